package websocket

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/pkg/log"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
	maxFrameSize = 16 << 10
)

// Handler is the public interface for the chat WebSocket delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       conversation.UseCase
	limiter  *middleware.RateLimiter
	upgrader websocket.Upgrader
}

// New creates the chat WebSocket handler. A nil limiter disables rate limiting.
func New(l log.Logger, uc conversation.UseCase, limiter *middleware.RateLimiter) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		limiter: limiter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the page is served from the same host; allow any origin for API clients
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes maps the chat socket. The session cookie is resolved before the upgrade.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.GET("/ws/chat", mw.Session(), h.Chat)
}
