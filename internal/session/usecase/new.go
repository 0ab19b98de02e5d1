package usecase

import (
	"sync"
	"time"

	"uxo-chatbot/internal/session"
	"uxo-chatbot/internal/session/repository"
	"uxo-chatbot/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	backend repository.Backend
	window  int
	now     func() time.Time

	mu    sync.Mutex
	locks map[string]*keyLock
}

// New creates the session use case. A window <= 0 uses session.DefaultWindow.
func New(l log.Logger, backend repository.Backend, window int) *implUseCase {
	if window <= 0 {
		window = session.DefaultWindow
	}
	return &implUseCase{
		l:       l,
		backend: backend,
		window:  window,
		now:     time.Now,
		locks:   make(map[string]*keyLock),
	}
}
