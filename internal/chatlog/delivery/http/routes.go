package http

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/middleware"
)

// RegisterRoutes maps POST {public}/chat/logs and GET {admin}/chatlogs.
func RegisterRoutes(public, admin *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	public.POST("/chat/logs", mw.RateLimit(), h.Create)
	admin.GET("/chatlogs", mw.Auth(), h.List)
}
