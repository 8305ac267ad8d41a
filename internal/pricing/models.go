package pricing

import "venuegate/internal/availability"

// QuotedSlot is the selected slot extended with its add-on codes; its price
// includes the add-ons.
type QuotedSlot struct {
	SessionID string   `json:"session_id"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	ProductID string   `json:"product_id"`
	Price     float64  `json:"price"`
	AddOns    []string `json:"addons"`
}

// Quote combines a slot with add-ons into a priced total. Taxes and fees
// are a placeholder until tax computation lands.
type Quote struct {
	Slot          QuotedSlot `json:"slot"`
	PriceSubtotal float64    `json:"price_subtotal"`
	TaxesFees     float64    `json:"taxes_fees"`
	PriceTotal    float64    `json:"price_total"`
}

// UpgradesRequest prices a selected slot with optional add-on codes.
type UpgradesRequest struct {
	SelectedSlot availability.Slot `json:"selected_slot" binding:"required"`
	AddOns       []string          `json:"addons"`
}
