package memory

import (
	"context"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/conversation/repository"
	"multilanguage-agent/internal/metrics"
)

// GetLog returns the log for the session and refreshes its expiry.
func (r *implRepository) GetLog(ctx context.Context, opt repository.GetLogOptions) (*conversation.Log, error) {
	if opt.SessionID == "" {
		return nil, repository.ErrInvalidSession
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lg, ok := r.logs.Get(opt.SessionID)
	if !ok {
		if !opt.CreateIfMissing {
			return nil, repository.ErrSessionNotFound
		}
		lg = conversation.NewLog()
		metrics.ActiveSessions.Inc()
		r.l.Debugf(ctx, "memory.GetLog: new session %s", opt.SessionID)
	}
	// re-adding resets the TTL so active sessions stay alive
	r.logs.Add(opt.SessionID, lg)
	return lg, nil
}

// Count returns the number of live sessions.
func (r *implRepository) Count(ctx context.Context) int {
	return r.logs.Len()
}

// onEvict runs under the LRU lock and must not call back into r.logs.
func (r *implRepository) onEvict(sessionID string, lg *conversation.Log) {
	metrics.ActiveSessions.Dec()
	r.l.Debugf(context.Background(), "memory.onEvict: session=%s entries=%d", sessionID, lg.Len())
}
