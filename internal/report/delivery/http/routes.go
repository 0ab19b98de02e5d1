package http

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/middleware"
)

// RegisterRoutes maps the public submit route and the admin review routes.
func RegisterRoutes(public, admin *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	public.POST("/reports", mw.RateLimit(), h.Create)

	reports := admin.Group("/reports", mw.Auth())
	{
		reports.GET("", h.List)
		reports.PATCH("/:id", h.UpdateStatus)
	}
}
