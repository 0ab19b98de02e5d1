package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	adminHTTP "uxo-chatbot/internal/admin/delivery/http"
	chatlogHTTP "uxo-chatbot/internal/chatlog/delivery/http"
	reportHTTP "uxo-chatbot/internal/report/delivery/http"
)

// setupChatLogDomain registers POST /api/v1/chat/logs and GET /api/v1/admin/chatlogs.
func (srv HTTPServer) setupChatLogDomain(ctx context.Context, api, admin *gin.RouterGroup) {
	h := chatlogHTTP.New(srv.l, srv.chatLogUC)
	chatlogHTTP.RegisterRoutes(api, admin, h, srv.mw)
	srv.l.Infof(ctx, "Chat log domain registered")
}

// setupReportDomain registers public report submission and admin review.
func (srv HTTPServer) setupReportDomain(ctx context.Context, api, admin *gin.RouterGroup) {
	h := reportHTTP.New(srv.l, srv.reportUC)
	reportHTTP.RegisterRoutes(api, admin, h, srv.mw)
	srv.l.Infof(ctx, "Report domain registered")
}

// setupAdminDomain registers POST /api/v1/admin/login.
func (srv HTTPServer) setupAdminDomain(ctx context.Context, admin *gin.RouterGroup) {
	h := adminHTTP.New(srv.l, srv.adminUC)
	adminHTTP.RegisterRoutes(admin, h)
	srv.l.Infof(ctx, "Admin domain registered")
}
