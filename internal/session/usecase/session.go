package usecase

import (
	"context"
	"fmt"
	"strings"

	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/session"
)

func (uc *implUseCase) Get(ctx context.Context, sessionID string) (model.Session, error) {
	if sessionID == "" {
		return model.Session{}, session.ErrEmptySessionID
	}
	s, ok, err := uc.backend.Get(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Get: %v", err)
		return model.Session{}, err
	}
	if !ok {
		return model.Session{ID: sessionID, LastIntent: session.DefaultIntent}, nil
	}
	s.ID = sessionID
	if s.LastIntent == "" {
		s.LastIntent = session.DefaultIntent
	}
	return s, nil
}

func (uc *implUseCase) LastIntent(ctx context.Context, sessionID string) (string, error) {
	s, err := uc.Get(ctx, sessionID)
	if err != nil {
		return session.DefaultIntent, err
	}
	return s.LastIntent, nil
}

func (uc *implUseCase) LastQuestion(ctx context.Context, sessionID string) (string, error) {
	s, err := uc.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return s.LastQuestion, nil
}

func (uc *implUseCase) RecentTurns(ctx context.Context, sessionID string) ([]model.Turn, error) {
	s, err := uc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Turns, nil
}

func (uc *implUseCase) ChatHistory(ctx context.Context, sessionID string) (string, error) {
	turns, err := uc.RecentTurns(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return FormatHistory(turns), nil
}

// FormatHistory renders turns the way the answer prompts expect them.
func FormatHistory(turns []model.Turn) string {
	var b strings.Builder
	for _, t := range turns {
		fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", t.Input, t.Output)
	}
	return b.String()
}

func (uc *implUseCase) AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = uc.now()
	}
	if err := uc.backend.Append(ctx, sessionID, turn, uc.window); err != nil {
		uc.l.Errorf(ctx, "session.usecase.AppendTurn: %v", err)
		return fmt.Errorf("append turn: %w", err)
	}
	uc.l.Debug(ctx, "session turn appended", "session_id", sessionID, "intent", turn.Intent)
	return nil
}

func (uc *implUseCase) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if err := uc.backend.Delete(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Clear: %v", err)
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
