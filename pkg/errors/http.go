package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status to respond with.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Common HTTP errors shared by delivery layers.
var (
	ErrBadRequest   = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound     = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyReqs  = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternal     = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
