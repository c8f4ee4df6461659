package repository

// GetLogOptions selects a session log.
type GetLogOptions struct {
	SessionID string
	// CreateIfMissing creates an empty log for unknown sessions. Reads leave it false.
	CreateIfMissing bool
}
