package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"venuegate/internal/shared/apperrors"
	"venuegate/internal/upstream"
)

// Service resolves products and add-ons, live against the provider or from
// the static table when the provider is unreachable or mocked.
type Service interface {
	ListProducts(ctx context.Context, category, venueID string) ([]Product, error)
	GetProduct(ctx context.Context, code, productID, venueID string) (*Product, error)

	// AddOnPrice and BasePrice are static-table reads used by the pricing
	// and availability components.
	AddOnPrice(code string) float64
	BasePrice(productID string) float64
}

type service struct {
	client *upstream.Client
	table  *Table
}

func NewService(client *upstream.Client, table *Table) Service {
	return &service{client: client, table: table}
}

func (s *service) ListProducts(ctx context.Context, category, venueID string) ([]Product, error) {
	if venueID == "" {
		venueID = s.client.VenueID()
	}
	return upstream.LiveOrSynthetic(ctx, s.client, "list_products",
		func(ctx context.Context) ([]Product, error) {
			return s.fetchProducts(ctx, category, venueID)
		},
		func() []Product {
			return s.table.Products()
		},
	)
}

func (s *service) GetProduct(ctx context.Context, code, productID, venueID string) (*Product, error) {
	if venueID == "" {
		venueID = s.client.VenueID()
	}
	product, err := upstream.LiveOrSynthetic(ctx, s.client, "get_product",
		func(ctx context.Context) (*Product, error) {
			return s.fetchProduct(ctx, code, productID, venueID)
		},
		func() *Product {
			if p, ok := s.table.Lookup(code, productID); ok {
				return &p
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.ErrNotFound
	}
	return product, nil
}

func (s *service) AddOnPrice(code string) float64 {
	return s.table.AddOnPrice(code)
}

func (s *service) BasePrice(productID string) float64 {
	return s.table.BasePrice(productID)
}

func (s *service) fetchProducts(ctx context.Context, category, venueID string) ([]Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var raw []map[string]any
	path := fmt.Sprintf("/api/v1/venues/%s/products", venueID)
	if err := s.client.GetJSON(ctx, path, query, &raw); err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(raw))
	for _, m := range raw {
		products = append(products, decodeProduct(m))
	}
	return products, nil
}

// fetchProduct resolves by code first; the identifier is only consulted
// when no code match exists.
func (s *service) fetchProduct(ctx context.Context, code, productID, venueID string) (*Product, error) {
	if code != "" {
		products, err := s.fetchProducts(ctx, "", venueID)
		if err != nil {
			return nil, err
		}
		upper := strings.ToUpper(code)
		for _, p := range products {
			if strings.ToUpper(p.Code) == upper {
				return &p, nil
			}
		}
	}

	if productID != "" {
		var raw map[string]any
		if err := s.client.GetJSON(ctx, "/api/v1/products/"+productID, nil, &raw); err != nil {
			return nil, err
		}
		p := decodeProduct(raw)
		return &p, nil
	}

	return nil, apperrors.ErrNotFound
}

func decodeProduct(m map[string]any) Product {
	var p Product
	p.Code, _ = upstream.PickString(m, upstream.AliasProductCode)
	p.Name, _ = upstream.PickString(m, upstream.AliasProductName)
	p.ProductID, _ = upstream.PickString(m, upstream.AliasProductID)
	p.BasePrice, _ = upstream.PickFloat(m, []string{"basePrice", "base_price", "price"})
	if guests, ok := upstream.PickFloat(m, []string{"maxGuests", "max_guests"}); ok {
		p.MaxGuests = int(guests)
	}
	if mins, ok := upstream.PickFloat(m, []string{"durationMins", "duration_mins", "duration"}); ok {
		p.DurationMins = int(mins)
	}
	if category, ok := upstream.PickString(m, []string{"category"}); ok {
		p.Category = category
	}
	if includes, ok := m["includes"].([]any); ok {
		for _, item := range includes {
			if s, ok := item.(string); ok {
				p.Includes = append(p.Includes, s)
			}
		}
	}
	return p
}
