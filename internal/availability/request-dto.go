package availability

// AvailabilityRequest accepts either a nested time_window or flat
// start/end; Normalize folds the flat form into the window.
type AvailabilityRequest struct {
	VenueID    string          `json:"venue_id"`
	ProductID  string          `json:"product_id" binding:"required"`
	Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
	Guests     int             `json:"guests" binding:"required,min=1"`
	TimeWindow *TimeWindowDTO  `json:"time_window" binding:"omitempty"`
	Start      string          `json:"start" binding:"omitempty,datetime=15:04"`
	End        string          `json:"end" binding:"omitempty,datetime=15:04"`
}

type TimeWindowDTO struct {
	Start string `json:"start" binding:"required,datetime=15:04"`
	End   string `json:"end" binding:"required,datetime=15:04"`
}

// Window returns the effective time window, or nil when none was supplied.
func (r *AvailabilityRequest) Window() *TimeWindow {
	if r.TimeWindow != nil {
		return &TimeWindow{Start: r.TimeWindow.Start, End: r.TimeWindow.End}
	}
	if r.Start != "" && r.End != "" {
		return &TimeWindow{Start: r.Start, End: r.End}
	}
	return nil
}

// BatchRequest checks several dates for one venue/product in parallel.
type BatchRequest struct {
	VenueID   string             `json:"venue_id"`
	ProductID string             `json:"product_id" binding:"required"`
	Requests  []BatchItemRequest `json:"requests" binding:"required,min=1,dive"`
}

type BatchItemRequest struct {
	Date       string         `json:"date" binding:"required,datetime=2006-01-02"`
	Guests     int            `json:"guests" binding:"required,min=1"`
	TimeWindow *TimeWindowDTO `json:"time_window" binding:"omitempty"`
}

func (r *BatchItemRequest) Item() BatchItem {
	item := BatchItem{Date: r.Date, Guests: r.Guests}
	if r.TimeWindow != nil {
		item.Window = &TimeWindow{Start: r.TimeWindow.Start, End: r.TimeWindow.End}
	}
	return item
}
