package usecase

import (
	"context"
	"strings"

	"uxo-chatbot/internal/chatlog"
	repo "uxo-chatbot/internal/chatlog/repository"
	"uxo-chatbot/internal/model"
)

// Record stores one exchange. Session id, message and response are required.
func (uc *implUseCase) Record(ctx context.Context, input chatlog.RecordInput) (chatlog.Log, error) {
	if strings.TrimSpace(input.SessionID) == "" || strings.TrimSpace(input.Message) == "" || strings.TrimSpace(input.Response) == "" {
		return chatlog.Log{}, chatlog.ErrInvalidPayload
	}

	entities := input.Entities
	if entities.Locations == nil && entities.ObjectTypes == nil && entities.Actions == nil {
		entities = model.EmptyEntities()
	}

	l, err := uc.repo.CreateLog(ctx, repo.CreateLogOptions{
		SessionID:  input.SessionID,
		Message:    input.Message,
		Response:   input.Response,
		Intent:     input.Intent,
		Entities:   entities,
		Confidence: input.Confidence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.chatlog.usecase.Record: %v", err)
		return chatlog.Log{}, err
	}
	return l, nil
}

// List pages logs newest first. Limit is clamped to [1, MaxLimit].
func (uc *implUseCase) List(ctx context.Context, input chatlog.ListInput) (chatlog.ListOutput, error) {
	if input.Skip < 0 {
		input.Skip = 0
	}
	if input.Limit <= 0 {
		input.Limit = chatlog.DefaultLimit
	}
	if input.Limit > chatlog.MaxLimit {
		input.Limit = chatlog.MaxLimit
	}

	logs, total, err := uc.repo.ListLogs(ctx, repo.ListLogsOptions{Offset: input.Skip, Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "internal.chatlog.usecase.List: %v", err)
		return chatlog.ListOutput{}, err
	}
	return chatlog.ListOutput{Logs: logs, Total: total, Skip: input.Skip, Limit: input.Limit}, nil
}
