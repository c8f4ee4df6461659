package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"multilanguage-agent/config"
	_ "multilanguage-agent/docs" // Swagger docs
	"multilanguage-agent/internal/conversation/repository/memory"
	"multilanguage-agent/internal/conversation/usecase"
	"multilanguage-agent/internal/dispatcher"
	"multilanguage-agent/internal/httpserver"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/internal/model"
	"multilanguage-agent/internal/persona"
	"multilanguage-agent/internal/test"
	"multilanguage-agent/pkg/llmprovider"
	"multilanguage-agent/pkg/log"
	"multilanguage-agent/pkg/telegram"
)

// @title       Multi-Language Chat Agent API
// @description Language-routed chat: English and German personas, with a polite fallback for everything else.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Multi-Language Chat Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Language identification
	detector, err := langid.NewDetectorFromConfig(ctx, cfg.Language, cfg.GoogleTranslate)
	if err != nil {
		logger.Warnf(ctx, "Primary language detector unavailable, using keywords only: %v", err)
	}
	identifier, err := langid.New(logger, detector, langid.PolicyFromConfig(cfg.Language))
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize language identifier: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Language detector: %s", cfg.Language.Detector)

	config.WatchLanguage(func(lang config.LanguageConfig) {
		if err := identifier.SetPolicy(langid.PolicyFromConfig(lang)); err != nil {
			logger.Warnf(context.Background(), "Ignoring reloaded language policy: %v", err)
			return
		}
		logger.Info(context.Background(), "Language policy reloaded")
	}, func(err error) {
		logger.Warnf(context.Background(), "Ignoring reloaded language policy: %v", err)
	})

	// 4. Text generation
	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "✅ LLM ready: %s (%s)", manager.Name(), manager.Model())

	// 5. Personas and dispatch
	personas, err := persona.NewDefault()
	if err != nil {
		logger.Errorf(ctx, "Failed to load personas: %v", err)
		os.Exit(1)
	}

	d, err := dispatcher.New(cfg.Dispatch.Strategy, logger, personas, manager, dispatcher.Options{
		Temperature: cfg.Dispatch.Temperature,
		MaxTokens:   cfg.Dispatch.MaxTokens,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize dispatcher: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Dispatch strategy: %s", cfg.Dispatch.Strategy)

	// 6. Conversation domain
	repo := memory.New(logger, cfg.Session.MaxSessions, cfg.Session.TTL)
	conversationUC := usecase.New(logger, repo, identifier, d)

	// 7. Telegram (optional)
	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		// ngrok may take a while to come up; don't hold the server back
		go registerTelegramWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	secureCookie := cfg.Environment.Name == string(model.EnvironmentProduction)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.Session, secureCookie),
		ConversationUC: conversationUC,
		TelegramBot:    bot,
		TestHandler:    test.New(logger, identifier, personas, conversationUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerTelegramWebhook sets the webhook to webhookURL, or to the ngrok tunnel when none is configured.
func registerTelegramWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, webhookURL string) {
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase, ngrokAttempts, ngrokRetryInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
