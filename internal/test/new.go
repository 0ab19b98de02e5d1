package test

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/internal/session"
	pkgLog "uxo-chatbot/pkg/log"
)

// Handler exposes debug endpoints that never reach a user-facing channel.
type Handler interface {
	HandleResolve(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, nlu nlu.UseCase, sessions session.UseCase) Handler {
	return &handler{
		l:        l,
		nlu:      nlu,
		sessions: sessions,
	}
}

// RegisterRoutes maps the debug endpoints under /test.
func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	g := r.Group("/test")
	{
		g.POST("/resolve", h.HandleResolve)
		g.POST("/reset", h.HandleResetSession)
		g.GET("/health", h.HandleHealthCheck)
	}
}
