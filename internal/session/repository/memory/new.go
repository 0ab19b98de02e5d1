package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/session/repository"
)

type implRepository struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, model.Session]
}

// New creates an in-memory backend. Idle sessions expire after ttl and the
// least recently used ones are evicted beyond maxSessions.
func New(maxSessions int, ttl time.Duration) repository.Backend {
	return &implRepository{
		cache: expirable.NewLRU[string, model.Session](maxSessions, nil, ttl),
	}
}
