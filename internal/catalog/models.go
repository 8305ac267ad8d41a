package catalog

// Product is a bookable package: identity, base price and party metadata.
// Field names mirror the wire shape the voice agent already consumes.
type Product struct {
	Code         string   `json:"code"`
	ProductID    string   `json:"product_id"`
	Name         string   `json:"name"`
	BasePrice    float64  `json:"basePrice"`
	MaxGuests    int      `json:"maxGuests"`
	DurationMins int      `json:"durationMins"`
	Includes     []string `json:"includes,omitempty"`
	Category     string   `json:"category,omitempty"`
}

// AddOn is a purchasable extra attached to a slot at pricing time.
type AddOn struct {
	Code  string  `json:"code"`
	Price float64 `json:"price"`
}
