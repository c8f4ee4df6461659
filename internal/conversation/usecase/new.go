package usecase

import (
	"context"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/conversation/repository"
	"multilanguage-agent/internal/dispatcher"
	"multilanguage-agent/internal/langid"
	pkgLog "multilanguage-agent/pkg/log"
)

// Identifier labels a message. *langid.Identifier satisfies it.
type Identifier interface {
	Detect(ctx context.Context, text string) langid.Detection
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	identifier Identifier
	dispatcher dispatcher.Dispatcher
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates a new conversation UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	identifier Identifier,
	d dispatcher.Dispatcher,
) conversation.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		identifier: identifier,
		dispatcher: d,
	}
}
