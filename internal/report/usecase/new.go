package usecase

import (
	"uxo-chatbot/internal/report"
	"uxo-chatbot/internal/report/repository"
	"uxo-chatbot/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates the report use case.
func New(repo repository.Repository, l log.Logger) report.UseCase {
	return &implUseCase{repo: repo, l: l}
}
