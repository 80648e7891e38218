package domain

import "sync"

// senderLocks hands out one mutex per sender id so that quota check and append
// happen as a single step for each sender.
type senderLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSenderLocks() *senderLocks {
	return &senderLocks{locks: make(map[string]*sync.Mutex)}
}

// lock blocks until the sender's mutex is held and returns its release func.
func (l *senderLocks) lock(senderID string) func() {
	l.mu.Lock()
	m, ok := l.locks[senderID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[senderID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
