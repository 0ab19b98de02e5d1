package session

import "time"

const (
	// DefaultIntent is reported for sessions without a recorded intent.
	DefaultIntent = "general"
	// DefaultWindow is the number of turns kept per session.
	DefaultWindow = 5
	// DefaultTTL is how long an idle in-memory session survives.
	DefaultTTL = 30 * time.Minute
	// DefaultMaxSessions caps the in-memory backend.
	DefaultMaxSessions = 10000

	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)
