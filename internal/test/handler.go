package test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/internal/session"
	pkgLog "uxo-chatbot/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	nlu      nlu.UseCase
	sessions session.UseCase
}

// HandleResolve runs intent resolution without dispatching or saving anything
// @Summary Resolve a question
// @Description Classify a question against a session's context. Nothing is answered or persisted.
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Question"
// @Success 200 {object} ResolveResponse
// @Router /test/resolve [post]
func (h *handler) HandleResolve(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = DefaultSessionID
	}

	var history []string
	if turns, err := h.sessions.RecentTurns(ctx, req.SessionID); err == nil {
		for _, t := range turns {
			history = append(history, t.Input)
		}
	}

	res, err := h.nlu.Resolve(ctx, nlu.ResolveInput{
		Question:  req.Text,
		Language:  req.Language,
		SessionID: req.SessionID,
	})

	resp := ResolveResponse{
		Success:          err == nil,
		Text:             req.Text,
		SessionID:        req.SessionID,
		Intent:           res.Intent,
		Confidence:       res.Confidence,
		LastIntent:       res.LastIntent,
		LastQuestion:     res.LastQuestion,
		AwaitingLocation: res.AwaitingLocation,
		EnrichedQuery:    res.EnrichedQuery,
		History:          history,
	}
	if err != nil {
		h.l.Warnf(ctx, "internal.test.HandleResolve: %v", err)
		resp.Error = err.Error()
	}

	h.l.Infof(ctx, "internal.test.HandleResolve: text=%q intent=%s confidence=%.2f",
		req.Text, res.Intent, res.Confidence)

	c.JSON(http.StatusOK, resp)
}

// HandleResetSession resets a debug session
// @Summary Reset a session
// @Description Clear conversation history for a session
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = DefaultSessionID
	}

	if err := h.sessions.Clear(ctx, req.SessionID); err != nil {
		h.l.Errorf(ctx, "internal.test.HandleResetSession: %v", err)
		c.JSON(http.StatusInternalServerError, ResetSessionResponse{Success: false, Message: "Failed to clear session", SessionID: req.SessionID})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleResetSession: Cleared session %s", req.SessionID)

	c.JSON(http.StatusOK, ResetSessionResponse{
		Success:   true,
		Message:   fmt.Sprintf("Session %s cleared", req.SessionID),
		SessionID: req.SessionID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
