package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "uxo-chatbot/pkg/errors"
)

func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Question) == "" {
		return req, pkgErrors.ErrBadRequest
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}

func (h *handler) processSessionParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("session_id"))
	if id == "" {
		return "", pkgErrors.ErrBadRequest
	}
	return id, nil
}
