package test

// DefaultSessionID is used when a debug request names no session.
const DefaultSessionID = "debug_session"

// ResolveRequest represents a resolve request
type ResolveRequest struct {
	Text      string `json:"text" binding:"required"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

// ResolveResponse is the resolver's verdict for one question.
type ResolveResponse struct {
	Success          bool     `json:"success"`
	Text             string   `json:"text"`
	SessionID        string   `json:"session_id"`
	Intent           string   `json:"intent,omitempty"`
	Confidence       float64  `json:"confidence"`
	LastIntent       string   `json:"last_intent,omitempty"`
	LastQuestion     string   `json:"last_question,omitempty"`
	AwaitingLocation bool     `json:"awaiting_hotline_location"`
	EnrichedQuery    string   `json:"enriched_query,omitempty"`
	History          []string `json:"history,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// ResetSessionRequest represents a reset session request
type ResetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
