package conversation

import "errors"

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMissingSession = errors.New("session id is required")
)
