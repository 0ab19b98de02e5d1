package chatlog

import (
	"time"

	"uxo-chatbot/internal/model"
)

// Log is one recorded question/answer exchange.
type Log struct {
	ID         uint
	SessionID  string
	Message    string
	Response   string
	Intent     string
	Entities   model.Entities
	Confidence float64
	CreatedAt  time.Time
}

type RecordInput struct {
	SessionID  string
	Message    string
	Response   string
	Intent     string
	Entities   model.Entities
	Confidence float64
}

type ListInput struct {
	Skip  int
	Limit int
}

type ListOutput struct {
	Logs  []Log
	Total int
	Skip  int
	Limit int
}
