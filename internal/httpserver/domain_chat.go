package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "uxo-chatbot/internal/chat/delivery/http"
)

// setupChatDomain registers /api/v1/chat/ask and the session routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Chat domain registered")
}
