package http

import (
	"uxo-chatbot/internal/admin"
	"uxo-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc admin.UseCase
}

// New creates the admin HTTP handler.
func New(l log.Logger, uc admin.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
