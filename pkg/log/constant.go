package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// SessionIDKey is the context key under which the chat session ID is stored.
// When present, every log line carries a session_id field.
type SessionIDKey struct{}
