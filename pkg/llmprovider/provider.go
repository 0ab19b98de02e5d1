package llmprovider

import "context"

// Generator produces a completion for a request. Manager implements it with
// fallback across providers; use cases depend on this interface only.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Provider is one concrete LLM backend.
type Provider interface {
	Generator

	// Name returns the provider name (e.g., "gemini", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONOutput asks the provider to return a JSON object.
	JSONOutput bool
}

// Message represents a conversation message
type Message struct {
	Role string
	Text string
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) *Request {
	return &Request{
		SystemInstruction: system,
		Messages:          []Message{{Role: RoleUser, Text: prompt}},
	}
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (u *Usage) inputTokens() int {
	if u == nil {
		return 0
	}
	return u.InputTokens
}

func (u *Usage) outputTokens() int {
	if u == nil {
		return 0
	}
	return u.OutputTokens
}
