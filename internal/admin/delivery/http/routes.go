package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /admin/login. Login is public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/login", h.Login)
}
