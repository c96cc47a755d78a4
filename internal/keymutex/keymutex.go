// Package keymutex provides per-key mutual exclusion for actor mutations.
//
// The lock is process-local. Under horizontal scale-out two instances can
// still interleave critical sections for the same actor; callers rely on
// advisory check-then-act reads for that case.
package keymutex

import "sync"

// KeyedMutex serializes critical sections per key.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lock
}

type lock struct {
	mu   sync.Mutex
	refs int
}

// New creates new instance of KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*lock),
	}
}

// Do runs f while holding the key's lock. The lock is released on every
// exit path, including a panic inside f. Calls for distinct keys proceed
// independently.
func (m *KeyedMutex) Do(key string, f func() error) error {
	l := m.acquire(key)
	defer m.release(key, l)

	return f()
}

func (m *KeyedMutex) acquire(key string) *lock {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &lock{}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()

	return l
}

func (m *KeyedMutex) release(key string, l *lock) {
	l.mu.Unlock()

	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}
