package http

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/pkg/response"
)

// Create godoc
// @Summary     Record a chat exchange
// @Description Stores a question/answer pair produced by an external frontend.
// @Tags        Chat logs
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Exchange"
// @Success     200  {object} logResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/logs [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	l, err := h.uc.Record(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.chatlog.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newLogResp(l))
}

// List godoc
// @Summary     List chat logs
// @Description Returns chat logs newest first.
// @Tags        Chat logs
// @Produce     json
// @Security    Bearer
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 20, max 100)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/chatlogs [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.chatlog.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(out))
}
