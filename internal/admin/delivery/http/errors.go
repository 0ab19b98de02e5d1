package http

import (
	"errors"
	"net/http"

	"uxo-chatbot/internal/admin"
	pkgErrors "uxo-chatbot/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, admin.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, admin.ErrInvalidCredentials.Error())
	default:
		return pkgErrors.ErrInternal
	}
}
