package sqlite

import (
	"context"
	"encoding/json"

	"uxo-chatbot/internal/chatlog"
	repo "uxo-chatbot/internal/chatlog/repository"
	"uxo-chatbot/internal/model"
)

func (r *implRepository) CreateLog(ctx context.Context, opt repo.CreateLogOptions) (chatlog.Log, error) {
	entities, err := json.Marshal(opt.Entities)
	if err != nil {
		r.l.Errorf(ctx, "internal.chatlog.repository.sqlite.CreateLog: marshal entities: %v", err)
		return chatlog.Log{}, repo.ErrFailedToInsert
	}

	row := chatLogRow{
		SessionID:  opt.SessionID,
		Message:    opt.Message,
		Response:   opt.Response,
		Intent:     opt.Intent,
		Entities:   string(entities),
		Confidence: opt.Confidence,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "internal.chatlog.repository.sqlite.CreateLog: %v", err)
		return chatlog.Log{}, repo.ErrFailedToInsert
	}
	return toLog(row), nil
}

func (r *implRepository) ListLogs(ctx context.Context, opt repo.ListLogsOptions) ([]chatlog.Log, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&chatLogRow{}).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "internal.chatlog.repository.sqlite.ListLogs count: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	var rows []chatLogRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Offset(opt.Offset).Limit(opt.Limit).
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "internal.chatlog.repository.sqlite.ListLogs: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	logs := make([]chatlog.Log, len(rows))
	for i, row := range rows {
		logs[i] = toLog(row)
	}
	return logs, int(total), nil
}

func toLog(row chatLogRow) chatlog.Log {
	entities := model.EmptyEntities()
	if row.Entities != "" {
		// A corrupt column reads as no entities.
		_ = json.Unmarshal([]byte(row.Entities), &entities)
	}
	return chatlog.Log{
		ID:         row.ID,
		SessionID:  row.SessionID,
		Message:    row.Message,
		Response:   row.Response,
		Intent:     row.Intent,
		Entities:   entities,
		Confidence: row.Confidence,
		CreatedAt:  row.CreatedAt,
	}
}
