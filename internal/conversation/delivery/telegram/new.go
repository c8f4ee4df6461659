package telegram

import (
	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/middleware"
	pkgLog "multilanguage-agent/pkg/log"
	pkgTelegram "multilanguage-agent/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l       pkgLog.Logger
	uc      conversation.UseCase
	bot     *pkgTelegram.Bot
	limiter *middleware.RateLimiter
}

// New creates a new Telegram delivery handler. A nil limiter disables rate limiting.
func New(l pkgLog.Logger, uc conversation.UseCase, bot *pkgTelegram.Bot, limiter *middleware.RateLimiter) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		limiter: limiter,
	}
}

// RegisterRoutes maps the webhook endpoint.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
