package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed mappings.json
var defaultMappings []byte

// DefaultBasePrice is used when a product is unknown to the static table
// and no live price is available.
const DefaultBasePrice = 349

// Table is the static product/add-on lookup used in fallback mode. Keyed by
// upper-cased product code, with a secondary index by identifier. Immutable
// after load.
type Table struct {
	byCode map[string]Product
	byID   map[string]Product
	addons map[string]AddOn
}

type mappingsFile struct {
	Packages map[string]struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		BasePrice    float64  `json:"basePrice"`
		MaxGuests    int      `json:"maxGuests"`
		DurationMins int      `json:"durationMins"`
		Includes     []string `json:"includes"`
		Category     string   `json:"category"`
	} `json:"packages"`
	Addons map[string]struct {
		Price float64 `json:"price"`
	} `json:"addons"`
}

// LoadTable builds the static table from the embedded mappings, or from the
// file at path when one is given.
func LoadTable(path string) (*Table, error) {
	raw := defaultMappings
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog mappings: %w", err)
		}
		raw = b
	}

	var file mappingsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog mappings: %w", err)
	}

	t := &Table{
		byCode: make(map[string]Product, len(file.Packages)),
		byID:   make(map[string]Product, len(file.Packages)),
		addons: make(map[string]AddOn, len(file.Addons)),
	}
	for code, p := range file.Packages {
		upper := strings.ToUpper(code)
		product := Product{
			Code:         upper,
			ProductID:    p.ID,
			Name:         p.Name,
			BasePrice:    p.BasePrice,
			MaxGuests:    p.MaxGuests,
			DurationMins: p.DurationMins,
			Includes:     p.Includes,
			Category:     p.Category,
		}
		t.byCode[upper] = product
		if p.ID != "" {
			t.byID[p.ID] = product
		}
	}
	for code, a := range file.Addons {
		upper := strings.ToUpper(code)
		t.addons[upper] = AddOn{Code: upper, Price: a.Price}
	}
	return t, nil
}

// Products returns every product in the table.
func (t *Table) Products() []Product {
	out := make([]Product, 0, len(t.byCode))
	for _, p := range t.byCode {
		out = append(out, p)
	}
	return out
}

// Lookup resolves a product by code, then by identifier. Code lookups are
// case-insensitive; the identifier is only consulted when the code misses.
func (t *Table) Lookup(code, productID string) (Product, bool) {
	if code != "" {
		if p, ok := t.byCode[strings.ToUpper(code)]; ok {
			return p, true
		}
	}
	if productID != "" {
		if p, ok := t.byID[productID]; ok {
			return p, true
		}
	}
	return Product{}, false
}

// AddOnPrice returns the price of an add-on code, or 0 for unknown codes.
func (t *Table) AddOnPrice(code string) float64 {
	if a, ok := t.addons[strings.ToUpper(code)]; ok {
		return a.Price
	}
	return 0
}

// BasePrice returns the base price for a product identifier, falling back
// to DefaultBasePrice for products the table does not know.
func (t *Table) BasePrice(productID string) float64 {
	if p, ok := t.byID[productID]; ok {
		return p.BasePrice
	}
	return DefaultBasePrice
}
