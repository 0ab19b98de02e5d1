package http

import (
	"errors"
	"net/http"

	"uxo-chatbot/internal/chat"
	pkgErrors "uxo-chatbot/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion), errors.Is(err, chat.ErrEmptySessionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternal
	}
}
