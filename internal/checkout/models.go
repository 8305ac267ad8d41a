package checkout

// CheckoutLink is a hosted payment URL for a hold, valid for a single
// payment attempt.
type CheckoutLink struct {
	PayLink string `json:"pay_link"`
}

// CheckoutRequest asks for a payable link for an existing hold.
type CheckoutRequest struct {
	HoldID    string `json:"hold_id" binding:"required"`
	ReturnURL string `json:"return_url" binding:"omitempty,url"`
	CancelURL string `json:"cancel_url" binding:"omitempty,url"`
}
