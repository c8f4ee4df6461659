package test

import (
	"context"

	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/persona"
	pkgLog "multilanguage-agent/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleIdentify(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// Identifier labels a text. *langid.Identifier satisfies it.
type Identifier interface {
	Detect(ctx context.Context, text string) langid.Detection
}

// SessionCounter reports live conversations. conversation.UseCase satisfies it.
type SessionCounter interface {
	ActiveSessions(ctx context.Context) int
}

type handler struct {
	l          pkgLog.Logger
	identifier Identifier
	personas   *persona.Registry
	sessions   SessionCounter
}

// New creates a new test handler. sessions may be nil.
func New(l pkgLog.Logger, identifier Identifier, personas *persona.Registry, sessions SessionCounter) Handler {
	return &handler{
		l:          l,
		identifier: identifier,
		personas:   personas,
		sessions:   sessions,
	}
}
