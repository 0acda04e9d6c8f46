package consultation

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"tabeeb-ai-agent/internal/engine"
)

// ErrNotFound is returned when a consultation handle is unknown.
var ErrNotFound = errors.New("consultation not found")

// Store keeps live consultations in memory. There is deliberately no
// persistence: state lives only for the duration of the process and every
// consultation owns its own session, so independent conversations never
// share mutable state.
type Store struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Consultation
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: make(map[uuid.UUID]*Consultation)}
}

// Create registers a new consultation with a fresh session.
func (s *Store) Create() *Consultation {
	c := &Consultation{
		ID:        uuid.New(),
		Session:   engine.NewSession(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.mu.Lock()
	s.items[c.ID] = c
	s.mu.Unlock()
	return c
}

// Get looks up a consultation by handle.
func (s *Store) Get(id uuid.UUID) (*Consultation, error) {
	s.mu.RLock()
	c, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Delete removes a consultation. Deleting an unknown handle is a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

// Len reports the number of live consultations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
