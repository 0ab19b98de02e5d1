package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"uxo-chatbot/config"
	_ "uxo-chatbot/docs" // Swagger docs
	"uxo-chatbot/internal/app"
	tgDelivery "uxo-chatbot/internal/chat/delivery/telegram"
	"uxo-chatbot/internal/db"
	"uxo-chatbot/internal/httpserver"
	"uxo-chatbot/pkg/log"
	"uxo-chatbot/pkg/telegram"
)

// @title       UXO Chatbot API
// @description Vietnamese UXO awareness assistant: hotline lookup, retrieval-augmented answers, reports and admin review.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
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
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting UXO chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Session backend: %s (window %d)", cfg.Session.Backend, cfg.Session.Window)

	// 3. Core services
	core, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize services: %v", err)
		os.Exit(1)
	}
	defer db.Close(core.DB)

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, core.Chat, bot)
		registerWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Chat:            core.Chat,
		NLU:             core.NLU,
		Sessions:        core.Sessions,
		ChatLogs:        core.ChatLogs,
		Reports:         core.Reports,
		Admins:          core.Admins,
		Tokens:          core.Tokens,
		RateLimit:       cfg.RateLimit,
		TelegramHandler: telegramHandler,
		Ready:           core.Ping,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// registerWebhook points Telegram at this service. Without a configured URL
// it tries the local ngrok agent.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, webhookURL string) {
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, defaultNgrokAPI, ngrokAttempts, ngrokInterval)
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
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
