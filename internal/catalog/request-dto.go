package catalog

// PackagesRequest lists products for a category.
type PackagesRequest struct {
	Category string `json:"category"`
	VenueID  string `json:"venue_id"`
}

// PackageInfoRequest resolves a single product. At least one of Code or
// ProductID must be present; the controller enforces that.
type PackageInfoRequest struct {
	Code      string `json:"code"`
	ProductID string `json:"product_id"`
	VenueID   string `json:"venue_id"`
}
