package http

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/middleware"
)

// RegisterRoutes maps chat endpoints under /chat.
func RegisterRoutes(r *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := r.Group("/chat")
	{
		g.POST("/ask", mw.RateLimit(), h.Ask)
		g.GET("/sessions/:session_id/history", h.History)
		g.DELETE("/sessions/:session_id", h.Reset)
	}
}
