package service

import "sync"

// SessionLocker serializes the read-modify-write cycle per session id.
// Every operation's working set is the whole session, so one mutex per
// session is the right granularity.
type SessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionLocker() *SessionLocker {
	return &SessionLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the session's mutex and returns its unlock function.
func (l *SessionLocker) Lock(sessionID string) func() {
	l.mu.Lock()
	m, ok := l.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sessionID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
