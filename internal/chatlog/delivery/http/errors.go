package http

import (
	"errors"
	"net/http"

	"uxo-chatbot/internal/chatlog"
	pkgErrors "uxo-chatbot/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chatlog.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternal
	}
}
