package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	tgDelivery "uxo-chatbot/internal/chat/delivery/telegram"
	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/test"
)

const APIPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group(APIPrefix)
	adminGroup := api.Group("/admin")

	srv.setupChatDomain(ctx, api)
	srv.setupChatLogDomain(ctx, api, adminGroup)
	srv.setupReportDomain(ctx, api, adminGroup)
	srv.setupAdminDomain(ctx, adminGroup)

	if srv.telegramHandler != nil {
		tgDelivery.RegisterRoutes(srv.gin.Group(""), srv.telegramHandler)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.environment != string(model.EnvironmentProduction) {
		test.RegisterRoutes(srv.gin.Group(""), test.New(srv.l, srv.nluUC, srv.sessions))
		srv.l.Infof(ctx, "Debug routes registered under /test (environment: %s)", srv.environment)
	}

	return nil
}
