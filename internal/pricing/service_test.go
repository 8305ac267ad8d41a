package pricing

import (
	"testing"

	"venuegate/internal/availability"
	"venuegate/internal/catalog"
	"venuegate/internal/shared/config"
	"venuegate/internal/upstream"
	"venuegate/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	table, err := catalog.LoadTable("")
	require.NoError(t, err)
	client := upstream.New(config.RollerConfig{}, logger.GetDefault())
	return NewService(catalog.NewService(client, table))
}

func testSlot() availability.Slot {
	return availability.Slot{
		SessionID: "sess_1",
		Start:     "2025-07-04T13:00:00-07:00",
		End:       "2025-07-04T14:45:00-07:00",
		ProductID: "42",
		Price:     349,
	}
}

func TestPriceSlot_SumsKnownAddOns(t *testing.T) {
	svc := newTestService(t)

	quote := svc.PriceSlot(testSlot(), []string{"PIZZA", "CAKE"})

	// 349 + 49 + 35
	assert.Equal(t, float64(433), quote.PriceSubtotal)
	assert.Equal(t, float64(0), quote.TaxesFees)
	assert.Equal(t, float64(433), quote.PriceTotal)
	assert.Equal(t, float64(433), quote.Slot.Price)
	assert.Equal(t, []string{"PIZZA", "CAKE"}, quote.Slot.AddOns)
}

func TestPriceSlot_UnknownAddOnsContributeZero(t *testing.T) {
	svc := newTestService(t)

	quote := svc.PriceSlot(testSlot(), []string{"PIZZA", "JETPACK", "PONIES"})

	assert.Equal(t, float64(398), quote.PriceTotal)
	// the unknown codes stay on the quote for the caller to see
	assert.Equal(t, []string{"PIZZA", "JETPACK", "PONIES"}, quote.Slot.AddOns)
}

func TestPriceSlot_AddOnCodesAreCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	quote := svc.PriceSlot(testSlot(), []string{"pizza"})

	assert.Equal(t, float64(398), quote.PriceTotal)
}

func TestPriceSlot_NilAddOnsBecomesEmptyList(t *testing.T) {
	svc := newTestService(t)

	quote := svc.PriceSlot(testSlot(), nil)

	assert.Equal(t, float64(349), quote.PriceTotal)
	require.NotNil(t, quote.Slot.AddOns)
	assert.Empty(t, quote.Slot.AddOns)
}

func TestPriceSlot_CarriesSlotIdentity(t *testing.T) {
	svc := newTestService(t)

	quote := svc.PriceSlot(testSlot(), nil)

	assert.Equal(t, "sess_1", quote.Slot.SessionID)
	assert.Equal(t, "2025-07-04T13:00:00-07:00", quote.Slot.Start)
	assert.Equal(t, "42", quote.Slot.ProductID)
}
