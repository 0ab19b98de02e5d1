package usecase

import (
	"uxo-chatbot/internal/lexicon"
	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/internal/session"
	"uxo-chatbot/pkg/llmprovider"
	"uxo-chatbot/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	llm      llmprovider.Generator
	sessions session.UseCase
	lex      *lexicon.Lexicon
}

var _ nlu.UseCase = (*implUseCase)(nil)

// New returns the concrete use case; callers store it behind nlu.UseCase.
func New(l log.Logger, llm llmprovider.Generator, sessions session.UseCase, lex *lexicon.Lexicon) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		sessions: sessions,
		lex:      lex,
	}
}
