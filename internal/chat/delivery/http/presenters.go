package http

import (
	"time"

	"uxo-chatbot/internal/chat"
	"uxo-chatbot/internal/model"
)

// --- Request DTOs ---

type askReq struct {
	SessionID string `json:"session_id" binding:"max=128"`
	Question  string `json:"question"   binding:"required,max=2000"`
	Language  string `json:"language"   binding:"omitempty,oneof=vi en"`
}

func (r askReq) toInput() chat.AnswerInput {
	return chat.AnswerInput{SessionID: r.SessionID, Question: r.Question, Language: r.Language}
}

// --- Response DTOs ---

type entitiesResp struct {
	Location []string `json:"location"`
	UXOType  []string `json:"uxo_type"`
	Action   []string `json:"action"`
}

func newEntitiesResp(e model.Entities) entitiesResp {
	return entitiesResp{
		Location: nonNil(e.Locations),
		UXOType:  nonNil(e.ObjectTypes),
		Action:   nonNil(e.Actions),
	}
}

type askResp struct {
	SessionID    string       `json:"session_id"`
	Intent       string       `json:"intent"`
	Confidence   float64      `json:"confidence"`
	Entities     entitiesResp `json:"entities"`
	Answer       string       `json:"answer"`
	EnrichedText string       `json:"enriched_text,omitempty"`
	MemoryLength int          `json:"memory_length"`
}

func newAskResp(o chat.AnswerOutput) askResp {
	return askResp{
		SessionID:    o.SessionID,
		Intent:       o.Intent,
		Confidence:   o.Confidence,
		Entities:     newEntitiesResp(o.Entities),
		Answer:       o.Answer,
		EnrichedText: o.EnrichedText,
		MemoryLength: o.MemoryLength,
	}
}

type turnResp struct {
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Intent    string    `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func newHistoryResp(sessionID string, turns []model.Turn) historyResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = turnResp{Input: t.Input, Output: t.Output, Intent: t.Intent, CreatedAt: t.CreatedAt}
	}
	return historyResp{SessionID: sessionID, Turns: out}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
