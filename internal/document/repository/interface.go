package repository

import (
	"context"

	"uxo-chatbot/internal/document"
)

// VectorRepository stores and searches document chunks.
type VectorRepository interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, chunks []document.Chunk) error
	Search(ctx context.Context, opt SearchOptions) ([]document.Passage, error)
}

// SearchOptions defines search parameters.
type SearchOptions struct {
	Query   string
	Limit   int
	DocType string // optional payload filter
}
