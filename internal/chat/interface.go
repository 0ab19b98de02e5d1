package chat

import (
	"context"

	"uxo-chatbot/internal/document"
	"uxo-chatbot/internal/model"
)

// Retriever returns the passages most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, limit int) ([]document.Passage, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Answer resolves, dispatches and records one question. The error is
	// non-nil only for invalid input; internal failures become an apology.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
	History(ctx context.Context, sessionID string) ([]model.Turn, error)
	Reset(ctx context.Context, sessionID string) error
}
