package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/conversation/repository"
	"multilanguage-agent/internal/metrics"
	"multilanguage-agent/internal/model"
)

// Send runs one exchange: identify, dispatch, append.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input conversation.SendInput) (conversation.SendOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return conversation.SendOutput{}, conversation.ErrEmptyMessage
	}
	if sc.SessionID == "" {
		return conversation.SendOutput{}, conversation.ErrMissingSession
	}

	lg, err := uc.repo.GetLog(ctx, repository.GetLogOptions{SessionID: sc.SessionID, CreateIfMissing: true})
	if err != nil {
		return conversation.SendOutput{}, fmt.Errorf("failed to load conversation: %w", err)
	}

	start := time.Now()
	det := uc.identifier.Detect(ctx, text)
	metrics.DetectionsTotal.WithLabelValues(string(det.Label), string(det.Path)).Inc()
	uc.l.Infof(ctx, "Send: channel=%s label=%s path=%s", sc.Channel, det.Label, det.Path)

	res := uc.dispatcher.Dispatch(ctx, text, det.Label)
	metrics.DispatchDuration.WithLabelValues(string(det.Label)).Observe(time.Since(start).Seconds())

	outcome := metrics.OutcomeReply
	switch {
	case res.Err != nil:
		outcome = metrics.OutcomeError
		uc.l.Warnf(ctx, "Send: generation failed: %v", res.Err)
	case res.Fallback:
		outcome = metrics.OutcomeFallback
	}
	metrics.DispatchTotal.WithLabelValues(string(res.Label), outcome).Inc()

	entry := conversation.Entry{
		Utterance:    text,
		Reply:        res.Text,
		Label:        res.Label,
		LabelDisplay: res.Label.Display(),
		Persona:      res.Persona,
		CreatedAt:    time.Now(),
	}
	lg.Append(entry)

	return conversation.SendOutput{
		Entry:     entry,
		Detection: det,
		Fallback:  res.Fallback,
		Failed:    res.Err != nil,
	}, nil
}
