package response

type Envelope struct {
	OK      bool        `json:"ok"`                // true on success
	Data    interface{} `json:"data,omitempty"`    // payload for success
	Error   string      `json:"error,omitempty"`   // short machine-readable error code
	Details interface{} `json:"details,omitempty"` // validation or error details
}
