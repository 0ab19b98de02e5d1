package usecase

import (
	"context"
	"fmt"
	"strings"

	"uxo-chatbot/internal/document"
	"uxo-chatbot/internal/document/repository"
)

// Retrieve returns up to limit passages for query. A non-positive limit uses the configured top-k.
func (uc *implUseCase) Retrieve(ctx context.Context, query string, limit int) ([]document.Passage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, document.ErrEmptyQuery
	}
	if limit <= 0 {
		limit = uc.topK
	}

	passages, err := uc.repo.Search(ctx, repository.SearchOptions{Query: query, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "internal.document.usecase.Retrieve: %v", err)
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	uc.l.Debugf(ctx, "internal.document.usecase.Retrieve: %d passages for %q", len(passages), query)
	return passages, nil
}
