package upstream

import (
	"fmt"
	"strconv"
)

// The provider's responses are not consistent about field naming across
// endpoints and versions (snake_case vs camelCase, id vs entity_id). Each
// canonical field has an ordered list of accepted spellings; the first one
// present wins.
var (
	AliasHoldID        = []string{"hold_id", "holdId", "id"}
	AliasExpiresAt     = []string{"expires_at", "expiresAt", "expires"}
	AliasDepositDue    = []string{"deposit_due", "depositDue"}
	AliasPriceTotal    = []string{"price_total", "priceTotal", "total"}
	AliasPayLink       = []string{"pay_link", "payLink", "url", "checkout_url", "checkoutUrl"}
	AliasBookingID     = []string{"booking_id", "bookingId", "id"}
	AliasPaymentStatus = []string{"payment_status", "paymentStatus"}
	AliasStatus        = []string{"status"}
	AliasConfirmed     = []string{"confirmed"}
	AliasSessionID     = []string{"id", "session_id", "sessionId"}
	AliasStart         = []string{"start", "start_time", "startTime"}
	AliasEnd           = []string{"end", "end_time", "endTime"}
	AliasPrice         = []string{"price", "amount"}
	AliasCapacity      = []string{"capacity", "remaining", "available"}
	AliasProductCode   = []string{"code", "product_code", "productCode"}
	AliasProductName   = []string{"name", "product_name", "productName"}
	AliasProductID     = []string{"product_id", "productId", "id"}
)

// PickString returns the first alias present in m, stringified. Numeric ids
// are common, so numbers convert rather than miss.
func PickString(m map[string]any, aliases []string) (string, bool) {
	for _, key := range aliases {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t, true
			}
		case float64:
			if t == float64(int64(t)) {
				return strconv.FormatInt(int64(t), 10), true
			}
			return strconv.FormatFloat(t, 'f', -1, 64), true
		default:
			return fmt.Sprintf("%v", t), true
		}
	}
	return "", false
}

// PickFloat returns the first numeric alias present in m. String-encoded
// numbers are tolerated.
func PickFloat(m map[string]any, aliases []string) (float64, bool) {
	for _, key := range aliases {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t, true
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// PickBool returns the first boolean alias present in m.
func PickBool(m map[string]any, aliases []string) (bool, bool) {
	for _, key := range aliases {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}
