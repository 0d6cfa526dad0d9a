// Package session provides conversation session storage. Each conversation
// owns an independent history and action memory; the store serializes turns
// per session so the single-threaded turn contract holds even when many
// conversations run concurrently.
package session

import (
	"sync"

	"github.com/dealerdesk/showroom/agent"
	"github.com/google/uuid"
)

// InMemoryStore is a volatile session store backed by a process local map.
// Safe for concurrent access; best suited for tests and single-node demo
// servers.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	session *agent.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*entry)}
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// WithSession runs fn with exclusive access to the session, creating it
// lazily on first use. Turns for the same session are serialized; distinct
// sessions proceed in parallel.
func (s *InMemoryStore) WithSession(sessionID string, fn func(sess *agent.Session) error) error {
	e := s.get(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Snapshot returns the analytics export for a session, creating it lazily.
func (s *InMemoryStore) Snapshot(sessionID string) agent.Analytics {
	var a agent.Analytics
	_ = s.WithSession(sessionID, func(sess *agent.Session) error {
		a = sess.Snapshot()
		return nil
	})
	return a
}

// Delete removes a session entirely.
func (s *InMemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// IDs lists the known session identifiers in no particular order.
func (s *InMemoryStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (s *InMemoryStore) get(sessionID string) *entry {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.sessions[sessionID]; ok {
		return e
	}
	e = &entry{session: agent.NewSession(sessionID)}
	s.sessions[sessionID] = e
	return e
}
