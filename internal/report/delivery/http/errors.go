package http

import (
	"errors"
	"net/http"

	"uxo-chatbot/internal/report"
	pkgErrors "uxo-chatbot/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidLatitude),
		errors.Is(err, report.ErrInvalidLongitude),
		errors.Is(err, report.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, report.ErrReportNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternal
	}
}
