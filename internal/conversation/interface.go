package conversation

import (
	"context"

	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/model"
)

// UseCase is the chat flow shared by every delivery surface.
type UseCase interface {
	// Send identifies the language of input.Text, dispatches it and appends the exchange.
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)

	// History returns the session's entries, oldest first.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)

	// Clear empties the session's log.
	Clear(ctx context.Context, sc model.Scope) error

	// Detect reports the language decision for text without dispatching it.
	Detect(ctx context.Context, text string) (langid.Detection, error)

	// ActiveSessions returns the number of sessions currently held in memory.
	ActiveSessions(ctx context.Context) int
}
