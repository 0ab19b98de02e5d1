package memory

import (
	"context"

	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/session/repository"
)

func (r *implRepository) Get(ctx context.Context, sessionID string) (model.Session, bool, error) {
	s, ok := r.cache.Get(sessionID)
	return s, ok, nil
}

func (r *implRepository) Append(ctx context.Context, sessionID string, turn model.Turn, window int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.cache.Get(sessionID)
	if !ok {
		s = model.Session{ID: sessionID}
	}
	r.cache.Add(sessionID, repository.ApplyTurn(s, turn, window))
	return nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	r.cache.Remove(sessionID)
	return nil
}
