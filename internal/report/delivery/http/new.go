package http

import (
	"uxo-chatbot/internal/report"
	"uxo-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc report.UseCase
}

// New creates the report HTTP handler.
func New(l log.Logger, uc report.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
