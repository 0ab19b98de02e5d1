package nlu

import "uxo-chatbot/internal/model"

// Classification is the classifier's raw verdict. Confidence is in [0, 1].
type Classification struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

type ResolveInput struct {
	Question  string
	Language  string
	SessionID string
}

// Resolution is the final intent for one turn plus the context it was derived from.
type Resolution struct {
	Intent           string  `json:"intent"`
	Confidence       float64 `json:"confidence"`
	LastIntent       string  `json:"last_intent"`
	LastQuestion     string  `json:"last_question"`
	AwaitingLocation bool    `json:"awaiting_hotline_location"`
	// EnrichedQuery is empty when the question stands on its own.
	EnrichedQuery string `json:"enriched_query,omitempty"`
}

// UnknownResolution is the safe value returned when resolution fails.
func UnknownResolution() Resolution {
	return Resolution{Intent: model.IntentUnknown}
}
