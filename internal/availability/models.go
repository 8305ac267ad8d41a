package availability

// Slot is a bookable time interval for a product on a date. Start and end
// are ISO timestamps as the provider reports them; slots are copied, never
// mutated.
type Slot struct {
	SessionID string  `json:"session_id"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
	Capacity  *int    `json:"capacity,omitempty"`
}

// Alternate is a nearby option outside the requested window, offered when
// the preferred slots do not suit.
type Alternate struct {
	Date      string  `json:"date"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
}

// TimeWindow bounds a query to HH:MM..HH:MM within the day.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Result is a ranked availability response. Slots is never empty on a
// successful return; synthetic data stands in when the provider cannot
// answer.
type Result struct {
	Slots      []Slot      `json:"slots"`
	Alternates []Alternate `json:"alternates"`
}

// Query is a single availability question.
type Query struct {
	VenueID   string
	ProductID string
	Date      string // YYYY-MM-DD
	Guests    int
	Window    *TimeWindow
}

// BatchItem is one sub-query of a batch request for a fixed venue/product.
type BatchItem struct {
	Date   string
	Guests int
	Window *TimeWindow
}

// BatchResult pairs a sub-query's date with its availability, in submission
// order.
type BatchResult struct {
	Date       string      `json:"date"`
	Slots      []Slot      `json:"slots"`
	Alternates []Alternate `json:"alternates"`
}
