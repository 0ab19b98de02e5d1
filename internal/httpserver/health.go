package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "uxo-chatbot/pkg/errors"
	"uxo-chatbot/pkg/response"
)

const (
	HealthMessage = "UXO awareness assistant"
	HealthVersion = "1.0.0"
	ServiceName   = "uxo-chatbot"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "service not ready")

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Message: HealthMessage, Version: HealthVersion, Service: ServiceName}
}

// healthCheck
// @Summary     Health check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports 503 while the readiness probe (database ping) fails.
// @Summary     Readiness check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "internal.httpserver.readyCheck: %v", err)
			response.Error(c, errNotReady, map[string]interface{}{"status": "not_ready"})
			return
		}
	}
	response.OK(c, newHealthResp("ready"))
}

// liveCheck
// @Summary     Liveness check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
