package model

import "time"

// Turn is one completed exchange in a session. Turns are append-only.
type Turn struct {
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Intent    string    `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the conversational state kept per session key.
type Session struct {
	ID           string
	Turns        []Turn // oldest first, bounded by the store window
	LastIntent   string
	LastQuestion string
	UpdatedAt    time.Time
}

// LastAssistantMessage returns the output of the most recent turn, or "".
func (s Session) LastAssistantMessage() string {
	if len(s.Turns) == 0 {
		return ""
	}
	return s.Turns[len(s.Turns)-1].Output
}
