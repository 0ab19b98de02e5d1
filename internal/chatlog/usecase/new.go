package usecase

import (
	"uxo-chatbot/internal/chatlog"
	"uxo-chatbot/internal/chatlog/repository"
	"uxo-chatbot/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates the chat log use case.
func New(repo repository.Repository, l log.Logger) chatlog.UseCase {
	return &implUseCase{repo: repo, l: l}
}
