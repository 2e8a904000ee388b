package content

import (
	"sync"
)

// Store holds the active catalog and swaps it on reload
type Store struct {
	mu  sync.RWMutex
	cat *Catalog
}

// NewStore creates a store serving cat, or the defaults when cat is nil
func NewStore(cat *Catalog) *Store {
	if cat == nil {
		cat = Default()
	}
	return &Store{cat: cat}
}

// Current returns the active catalog. Callers must not mutate it.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Replace swaps in a new catalog
func (s *Store) Replace(cat *Catalog) {
	s.mu.Lock()
	s.cat = cat
	s.mu.Unlock()
}
