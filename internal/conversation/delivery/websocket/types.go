package websocket

// Inbound frame types
const (
	TypeMessage = "message"
	TypeClear   = "clear"
)

// Outbound frame types
const (
	TypeLanguage = "language"
	TypeReply    = "reply"
	TypeCleared  = "cleared"
	TypeError    = "error"
)

// Error types carried by error frames
const (
	ErrTypeInvalidRequest = "invalid_request"
	ErrTypeEmptyMessage   = "empty_message"
	ErrTypeRateLimited    = "rate_limited"
	ErrTypeInternal       = "internal_error"
)

// Request is a frame sent by the client.
type Request struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Response is a frame sent by the server. Only the fields of its type are set.
type Response struct {
	Type string `json:"type"`

	// language
	Label   string `json:"label,omitempty"`
	Display string `json:"display,omitempty"`
	Path    string `json:"path,omitempty"`

	// reply
	Reply    string `json:"reply,omitempty"`
	Persona  string `json:"persona,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
	Failed   bool   `json:"failed,omitempty"`

	// error
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
}
