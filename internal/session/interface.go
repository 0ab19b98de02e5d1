package session

import (
	"context"

	"uxo-chatbot/internal/model"
)

// UseCase is the session memory store. Unseen sessions read as empty
// defaults and are created on first write.
type UseCase interface {
	// Get returns the whole session state in one read.
	Get(ctx context.Context, sessionID string) (model.Session, error)
	// LastIntent returns the last resolved intent, DefaultIntent when unknown.
	LastIntent(ctx context.Context, sessionID string) (string, error)
	// LastQuestion returns the last raw user question, "" when unknown.
	LastQuestion(ctx context.Context, sessionID string) (string, error)
	// RecentTurns returns the turns kept in the window, oldest first.
	RecentTurns(ctx context.Context, sessionID string) ([]model.Turn, error)
	// ChatHistory renders the window as "User: ...\nAssistant: ...\n" lines.
	ChatHistory(ctx context.Context, sessionID string) (string, error)
	// AppendTurn records a completed turn and updates last intent/question.
	AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error
	// Clear deletes all state for the session.
	Clear(ctx context.Context, sessionID string) error
	// Lock serializes work on one session key. Call the returned func to release.
	Lock(sessionID string) (unlock func())
}
