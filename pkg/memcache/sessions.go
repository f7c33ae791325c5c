// pkg/mem/sessions.go
package mem

import (
	"errors"
	"sync"
	"time"

	"travelend/internal/models/data_models"
)

// ErrSessionExpired is returned by Update when the session is missing or
// past its expiry. Callers translate it to their own not-found error.
var ErrSessionExpired = errors.New("session expired")

type SessionStore interface {
	Put(session *data_models.PlanningSession, ttl time.Duration)

	// Get returns the session if it has not expired and refreshes its
	// expiry (sliding window). Returns false if missing/expired.
	Get(id string) (*data_models.PlanningSession, bool)

	// Update applies fn to the stored session under the store lock so a
	// mutation is never torn by a concurrent read.
	Update(id string, fn func(*data_models.PlanningSession) error) (*data_models.PlanningSession, error)

	Delete(id string)
}

type entry struct {
	session   *data_models.PlanningSession
	expiresAt time.Time
	ttl       time.Duration
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]entry),
	}
}

func (s *Sessions) Put(session *data_models.PlanningSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = entry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
		ttl:       ttl,
	}
}

func (s *Sessions) Get(id string) (*data_models.PlanningSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil, false
	}
	e.expiresAt = time.Now().Add(e.ttl) // sliding expiry
	s.data[id] = e
	return e.session, true
}

func (s *Sessions) Update(id string, fn func(*data_models.PlanningSession) error) (*data_models.PlanningSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return nil, ErrSessionExpired
	}
	if err := fn(e.session); err != nil {
		return nil, err
	}
	e.expiresAt = time.Now().Add(e.ttl)
	s.data[id] = e
	return e.session, nil
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
