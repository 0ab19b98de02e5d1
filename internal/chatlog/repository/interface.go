package repository

import (
	"context"

	"uxo-chatbot/internal/chatlog"
)

// Repository stores chat logs.
type Repository interface {
	CreateLog(ctx context.Context, opt CreateLogOptions) (chatlog.Log, error)
	ListLogs(ctx context.Context, opt ListLogsOptions) ([]chatlog.Log, int, error)
}
