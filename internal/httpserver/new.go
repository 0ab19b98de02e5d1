package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"uxo-chatbot/config"
	"uxo-chatbot/internal/admin"
	"uxo-chatbot/internal/chat"
	tgDelivery "uxo-chatbot/internal/chat/delivery/telegram"
	"uxo-chatbot/internal/chatlog"
	"uxo-chatbot/internal/middleware"
	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/internal/report"
	"uxo-chatbot/internal/session"
	"uxo-chatbot/pkg/log"
	"uxo-chatbot/pkg/scope"
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
	ready       func(context.Context) error

	// Chat domain
	chatUC   chat.UseCase
	nluUC    nlu.UseCase
	sessions session.UseCase

	// Back office
	chatLogUC chatlog.UseCase
	reportUC  report.UseCase
	adminUC   admin.UseCase

	// Optional: nil when no bot token is configured
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Chat     chat.UseCase
	NLU      nlu.UseCase
	Sessions session.UseCase

	ChatLogs chatlog.UseCase
	Reports  report.UseCase
	Admins   admin.UseCase

	Tokens    scope.Manager
	RateLimit config.RateLimitConfig

	TelegramHandler tgDelivery.Handler

	// Ready backs GET /ready; nil means always ready.
	Ready func(context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		ready:           cfg.Ready,
		chatUC:          cfg.Chat,
		nluUC:           cfg.NLU,
		sessions:        cfg.Sessions,
		chatLogUC:       cfg.ChatLogs,
		reportUC:        cfg.Reports,
		adminUC:         cfg.Admins,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if cfg.Tokens == nil {
		return nil, errors.New("token manager is required")
	}
	srv.mw = middleware.New(logger, cfg.Tokens, cfg.Admins, cfg.RateLimit)

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
	if srv.chatUC == nil || srv.nluUC == nil || srv.sessions == nil {
		return errors.New("chat, nlu and session use cases are required")
	}
	if srv.chatLogUC == nil || srv.reportUC == nil || srv.adminUC == nil {
		return errors.New("chat log, report and admin use cases are required")
	}
	return nil
}

// Handler exposes the router, for tests and embedding.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
