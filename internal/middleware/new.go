package middleware

import (
	"uxo-chatbot/config"
	"uxo-chatbot/internal/admin"
	"uxo-chatbot/pkg/log"
	"uxo-chatbot/pkg/scope"
)

type Middleware struct {
	l       log.Logger
	tokens  scope.Manager
	admins  admin.UseCase
	limiter *rateLimiter
}

// New creates the shared middleware set. A disabled rate limit makes RateLimit a no-op.
func New(l log.Logger, tokens scope.Manager, admins admin.UseCase, rl config.RateLimitConfig) Middleware {
	m := Middleware{l: l, tokens: tokens, admins: admins}
	if rl.Enabled && rl.PerMinute > 0 {
		m.limiter = newRateLimiter(rl.PerMinute)
	}
	return m
}
