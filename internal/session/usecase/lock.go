package usecase

import "sync"

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// Lock blocks until the caller holds the session key. Entries are dropped
// once nobody holds or waits on them.
func (uc *implUseCase) Lock(sessionID string) func() {
	uc.mu.Lock()
	kl, ok := uc.locks[sessionID]
	if !ok {
		kl = &keyLock{}
		uc.locks[sessionID] = kl
	}
	kl.refs++
	uc.mu.Unlock()

	kl.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			kl.mu.Unlock()
			uc.mu.Lock()
			kl.refs--
			if kl.refs == 0 {
				delete(uc.locks, sessionID)
			}
			uc.mu.Unlock()
		})
	}
}
