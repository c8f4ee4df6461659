package usecase

import (
	"context"
	"strings"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/metrics"
)

// Detect reports the language decision without dispatching or logging anything.
func (uc *implUseCase) Detect(ctx context.Context, text string) (langid.Detection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return langid.Detection{}, conversation.ErrEmptyMessage
	}

	det := uc.identifier.Detect(ctx, text)
	metrics.DetectionsTotal.WithLabelValues(string(det.Label), string(det.Path)).Inc()
	return det, nil
}
