package usecase

import (
	"context"
	"errors"
	"fmt"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/conversation/repository"
	"multilanguage-agent/internal/model"
)

// History returns the session's entries. Unknown sessions have an empty history.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (conversation.HistoryOutput, error) {
	if sc.SessionID == "" {
		return conversation.HistoryOutput{}, conversation.ErrMissingSession
	}

	lg, err := uc.repo.GetLog(ctx, repository.GetLogOptions{SessionID: sc.SessionID})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return conversation.HistoryOutput{Entries: []conversation.Entry{}}, nil
		}
		return conversation.HistoryOutput{}, fmt.Errorf("failed to load conversation: %w", err)
	}

	return conversation.HistoryOutput{Entries: lg.All()}, nil
}

// ActiveSessions reports how many sessions the store currently holds.
func (uc *implUseCase) ActiveSessions(ctx context.Context) int {
	return uc.repo.Count(ctx)
}

// Clear empties the session's log. The session itself stays alive.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return conversation.ErrMissingSession
	}

	lg, err := uc.repo.GetLog(ctx, repository.GetLogOptions{SessionID: sc.SessionID})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load conversation: %w", err)
	}

	lg.Clear()
	uc.l.Infof(ctx, "Clear: channel=%s", sc.Channel)
	return nil
}
