package repository

import "uxo-chatbot/internal/model"

type CreateLogOptions struct {
	SessionID  string
	Message    string
	Response   string
	Intent     string
	Entities   model.Entities
	Confidence float64
}

// ListLogsOptions pages logs newest first.
type ListLogsOptions struct {
	Offset int
	Limit  int
}
