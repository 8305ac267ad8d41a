package pricing

import (
	"venuegate/internal/availability"
	"venuegate/internal/catalog"
)

// Service composes priced quotes. Pure: no upstream calls, no side effects.
type Service interface {
	PriceSlot(slot availability.Slot, addonCodes []string) Quote
}

type service struct {
	catalog catalog.Service
}

func NewService(cat catalog.Service) Service {
	return &service{catalog: cat}
}

// PriceSlot sums the slot price with every known add-on. Unknown codes
// contribute zero rather than erroring, so the agent can pass through
// whatever the caller asked for.
func (s *service) PriceSlot(slot availability.Slot, addonCodes []string) Quote {
	if addonCodes == nil {
		addonCodes = []string{}
	}

	addonTotal := 0.0
	for _, code := range addonCodes {
		addonTotal += s.catalog.AddOnPrice(code)
	}

	subtotal := slot.Price + addonTotal
	return Quote{
		Slot: QuotedSlot{
			SessionID: slot.SessionID,
			Start:     slot.Start,
			End:       slot.End,
			ProductID: slot.ProductID,
			Price:     subtotal,
			AddOns:    addonCodes,
		},
		PriceSubtotal: subtotal,
		TaxesFees:     0,
		PriceTotal:    subtotal,
	}
}
