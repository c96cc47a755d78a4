// Package memory is an in-memory ttl cache for response bodies.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu    sync.RWMutex
	items map[string]item
}

// NewStorage ...
func NewStorage() *Storage {
	return &Storage{
		items: make(map[string]item),
	}
}

// Get returns the cached content or nil when absent or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(v.expiresAt) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil
	}

	return v.content
}

// Set ...
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	s.items[key] = item{
		content:   content,
		expiresAt: time.Now().Add(duration),
	}
	s.mu.Unlock()
}
