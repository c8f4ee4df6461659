package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/internal/test"
	"multilanguage-agent/pkg/log"
	"multilanguage-agent/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Conversation domain
	conversationUC conversation.UseCase
	telegramBot    *telegram.Bot

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Conversation domain
	ConversationUC conversation.UseCase
	TelegramBot    *telegram.Bot // optional, enables the webhook route

	// Test domain
	TestHandler test.Handler
}

// New creates a new HTTPServer instance and maps all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		conversationUC: cfg.ConversationUC,
		telegramBot:    cfg.TelegramBot,
		testHandler:    cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation usecase is required")
	}
	return nil
}
