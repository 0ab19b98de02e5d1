package chat

import "uxo-chatbot/internal/model"

type AnswerInput struct {
	Question  string
	Language  string
	SessionID string
}

type AnswerOutput struct {
	SessionID    string
	Intent       string
	Confidence   float64
	Entities     model.Entities
	Answer       string
	EnrichedText string
	// MemoryLength counts the user and assistant messages kept for the session.
	MemoryLength int
}
