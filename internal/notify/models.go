package notify

import "time"

// Notification methods with a configured backend.
const (
	MethodSMS   = "sms"
	MethodEmail = "email"
)

// SendLinkRequest asks for a payment link to be delivered to a contact.
type SendLinkRequest struct {
	Method string `json:"method" binding:"required,oneof=sms email"`
	To     string `json:"to" binding:"required"`
	Link   string `json:"link" binding:"required,url"`
	Name   string `json:"name"`
	HoldID string `json:"hold_id"`
}

// SendLinkResult reports the dispatch outcome.
type SendLinkResult struct {
	Sent      bool   `json:"sent"`
	Method    string `json:"method"`
	To        string `json:"to"`
	MessageID string `json:"message_id"`
}

// paymentLinkMessage is the event published for the downstream sender.
type paymentLinkMessage struct {
	MessageID string    `json:"message_id"`
	Method    string    `json:"method"`
	To        string    `json:"to"`
	Link      string    `json:"link"`
	Name      string    `json:"name,omitempty"`
	HoldID    string    `json:"hold_id,omitempty"`
	QueuedAt  time.Time `json:"queued_at"`
}
