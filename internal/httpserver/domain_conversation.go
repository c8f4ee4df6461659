package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	chatHTTP "multilanguage-agent/internal/conversation/delivery/http"
	chatTelegram "multilanguage-agent/internal/conversation/delivery/telegram"
	chatWS "multilanguage-agent/internal/conversation/delivery/websocket"
	"multilanguage-agent/internal/middleware"
)

// setupConversationDomain builds every chat surface on top of one UseCase.
//
// Surfaces:
//  1. Form UI:   GET /, POST /chat/send, POST /chat/clear
//  2. JSON API:  /api/v1/chat/messages, /api/v1/chat/detect
//  3. WebSocket: GET /ws/chat
//  4. Telegram:  POST /webhook/telegram (only with a bot)
func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h, err := chatHTTP.New(srv.l, srv.conversationUC)
	if err != nil {
		return fmt.Errorf("failed to create chat handler: %w", err)
	}
	chatHTTP.RegisterUIRoutes(srv.gin, h, mw)
	chatHTTP.RegisterRoutes(api, h, mw)

	chatWS.RegisterRoutes(srv.gin, chatWS.New(srv.l, srv.conversationUC, mw.Limiter()), mw)

	if srv.telegramBot != nil {
		chatTelegram.RegisterRoutes(srv.gin, chatTelegram.New(srv.l, srv.conversationUC, srv.telegramBot, mw.Limiter()))
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
	}

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
