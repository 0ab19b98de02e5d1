package http

import (
	"uxo-chatbot/internal/chatlog"
	"uxo-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chatlog.UseCase
}

// New creates the chat log HTTP handler.
func New(l log.Logger, uc chatlog.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
