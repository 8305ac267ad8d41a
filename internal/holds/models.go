package holds

import (
	"time"

	"venuegate/internal/availability"
)

// Hold statuses as this gateway understands them. The authoritative state
// lives upstream; these are advisory and never enforced locally.
const (
	StatusCreated   = "created"
	StatusExpired   = "expired"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Hold is a provisional, time-limited reservation against a slot.
type Hold struct {
	HoldID     string    `json:"hold_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	DepositDue float64   `json:"deposit_due"`
	PriceTotal float64   `json:"price_total"`
	Status     string    `json:"status"`
}

// CurrentStatus infers expiry from the recorded instant. It never mutates
// the hold or notifies anyone; upstream remains the source of truth.
func (h Hold) CurrentStatus(now time.Time) string {
	if h.Status == StatusCreated && now.After(h.ExpiresAt) {
		return StatusExpired
	}
	return h.Status
}

// Contact identifies the person the hold is for.
type Contact struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

// BookingStatus is the provider's view of a hold's lifecycle.
type BookingStatus struct {
	Status        string `json:"status"`
	BookingID     string `json:"booking_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	Confirmed     bool   `json:"confirmed"`
}

// HoldRequest creates a provisional reservation for a selected slot.
type HoldRequest struct {
	Slot    availability.Slot `json:"slot" binding:"required"`
	Contact Contact           `json:"contact" binding:"required"`
	Guests  int               `json:"guests" binding:"required,min=1"`
	Notes   string            `json:"notes"`
}

// StatusRequest looks up the lifecycle state of a hold.
type StatusRequest struct {
	HoldID string `json:"hold_id" binding:"required"`
}
