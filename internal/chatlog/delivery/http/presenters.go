package http

import (
	"uxo-chatbot/internal/chatlog"
	"uxo-chatbot/internal/model"
	"uxo-chatbot/pkg/response"
)

type createReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message"    binding:"required"`
	Response  string `json:"response"   binding:"required"`
}

func (r createReq) toInput() chatlog.RecordInput {
	return chatlog.RecordInput{SessionID: r.SessionID, Message: r.Message, Response: r.Response}
}

type listReq struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

func (r listReq) toInput() chatlog.ListInput {
	return chatlog.ListInput{Skip: r.Skip, Limit: r.Limit}
}

type logResp struct {
	ID         uint              `json:"id"`
	SessionID  string            `json:"session_id"`
	Message    string            `json:"message"`
	Response   string            `json:"response"`
	Intent     string            `json:"intent,omitempty"`
	Entities   model.Entities    `json:"entities"`
	Confidence float64           `json:"confidence"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newLogResp(l chatlog.Log) logResp {
	return logResp{
		ID:         l.ID,
		SessionID:  l.SessionID,
		Message:    l.Message,
		Response:   l.Response,
		Intent:     l.Intent,
		Entities:   l.Entities,
		Confidence: l.Confidence,
		CreatedAt:  response.DateTime(l.CreatedAt),
	}
}

type listResp struct {
	Logs  []logResp `json:"logs"`
	Total int       `json:"total"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
}

func newListResp(out chatlog.ListOutput) listResp {
	logs := make([]logResp, len(out.Logs))
	for i, l := range out.Logs {
		logs[i] = newLogResp(l)
	}
	return listResp{Logs: logs, Total: out.Total, Skip: out.Skip, Limit: out.Limit}
}
