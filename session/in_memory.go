package session

import (
	"sync"

	"github.com/hupe1980/dialogmesh/core"
)

// InMemoryStore is a volatile Store implementation keeping sessions in a
// process local map. It is safe for concurrent access and best suited for
// tests or ephemeral demo servers.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*Session)}
}

// Create allocates a new session with a fresh dialogue state.
func (s *InMemoryStore) Create(domain core.Domain) (*Session, error) {
	sess := New(domain)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess, nil
}

// Get returns the session with the given id, if present.
func (s *InMemoryStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes the session with the given id.
func (s *InMemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
