package repository

import (
	"context"

	"multilanguage-agent/internal/conversation"
)

// Repository holds one conversation log per session.
type Repository interface {
	// GetLog returns the session's log, creating it on first use.
	GetLog(ctx context.Context, opt GetLogOptions) (*conversation.Log, error)

	// Count returns the number of sessions currently held.
	Count(ctx context.Context) int
}
