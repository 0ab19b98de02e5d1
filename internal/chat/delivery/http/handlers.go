package http

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/pkg/response"
)

// Ask godoc
// @Summary     Ask the UXO assistant
// @Description Answers one question. A session id is generated when none is sent; reuse it for follow-ups.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200  {object} askResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.http.Ask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAskResp(out))
}

// History godoc
// @Summary     Session history
// @Description Returns the turns kept for a session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{session_id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := h.processSessionParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	turns, err := h.uc.History(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "internal.chat.delivery.http.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newHistoryResp(sessionID, turns))
}

// Reset godoc
// @Summary     Clear a session
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{session_id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := h.processSessionParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Reset(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "internal.chat.delivery.http.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"session_id": sessionID, "cleared": true})
}
