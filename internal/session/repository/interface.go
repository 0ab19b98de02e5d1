package repository

import (
	"context"

	"uxo-chatbot/internal/model"
)

// Backend persists session state. Implementations must be safe for concurrent use.
type Backend interface {
	// Get returns the session and whether it exists.
	Get(ctx context.Context, sessionID string) (model.Session, bool, error)
	// Append adds turn, keeps at most window turns, and updates last intent/question.
	Append(ctx context.Context, sessionID string, turn model.Turn, window int) error
	// Delete removes the session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// ApplyTurn is the shared state transition used by backends that store whole sessions.
func ApplyTurn(s model.Session, turn model.Turn, window int) model.Session {
	turns := make([]model.Turn, 0, len(s.Turns)+1)
	turns = append(turns, s.Turns...)
	turns = append(turns, turn)
	if window > 0 && len(turns) > window {
		turns = turns[len(turns)-window:]
	}
	s.Turns = turns
	if turn.Intent != "" {
		s.LastIntent = turn.Intent
	}
	s.LastQuestion = turn.Input
	s.UpdatedAt = turn.CreatedAt
	return s
}
