package deepseek

import "time"

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 60 * time.Second

	// maxResponseBytes caps how much of a reply body is read.
	maxResponseBytes = 4 << 20

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
