// Package cache is a process-local read cache for computed listing pages.
// It is read-mostly; writers evict the whole namespace rather than single
// keys, so results are rebuilt lazily on the next read.
package cache

import (
	"sync"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string]any
}

func New() *Store {
	return &Store{
		entries: make(map[string]any),
	}
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
}

// InvalidateAll drops every entry. Called synchronously at the end of every
// successful write path; no partial invalidation is attempted.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]any)
}
