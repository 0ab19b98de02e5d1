package http

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/pkg/response"
)

// Login godoc
// @Summary     Admin login
// @Description Exchanges email and password for a bearer token.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} loginResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Incorrect email or password"
// @Router      /api/v1/admin/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.admin.delivery.http.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newLoginResp(output))
}
