package http

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/pkg/response"
)

// Create godoc
// @Summary     Report a suspected UXO
// @Description Files a sighting with GPS coordinates. New reports start as pending.
// @Tags        Reports
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Sighting"
// @Success     200  {object} reportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reports [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	r, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.report.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReportResp(r))
}

// List godoc
// @Summary     List UXO reports
// @Description Returns reports newest first, optionally filtered by status.
// @Tags        Reports
// @Produce     json
// @Security    Bearer
// @Param       status query string false "pending, reviewed or resolved"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/reports [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reports, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.report.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(reports))
}

// UpdateStatus godoc
// @Summary     Update report status
// @Tags        Reports
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path int             true "Report ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} reportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/reports/{id} [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	r, err := h.uc.UpdateStatus(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.report.delivery.http.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReportResp(r))
}
