package usecase

import (
	"uxo-chatbot/internal/admin"
	"uxo-chatbot/internal/admin/repository"
	"uxo-chatbot/pkg/encrypter"
	"uxo-chatbot/pkg/log"
	"uxo-chatbot/pkg/scope"
)

type implUseCase struct {
	repo      repository.Repository
	encrypter encrypter.Encrypter
	tokens    scope.Manager
	l         log.Logger
}

// New creates the admin use case.
func New(repo repository.Repository, enc encrypter.Encrypter, tokens scope.Manager, l log.Logger) admin.UseCase {
	return &implUseCase{repo: repo, encrypter: enc, tokens: tokens, l: l}
}
