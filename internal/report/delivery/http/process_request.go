package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "uxo-chatbot/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return req, pkgErrors.ErrBadRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = uint(id)
	return req, nil
}
