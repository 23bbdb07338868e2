package usecase

import (
	"slices"
	"sync"

	"banca-insights/internal/core/domain"
)

// sessionState holds everything a single session may mutate: its cached
// audience and the campaigns it scheduled. Nothing here is shared
// between sessions, so concurrent users cannot interfere with each
// other's results.
type sessionState struct {
	audience  *domain.Audience
	schedules []domain.ScheduledCampaign
}

// sessionStore maps session IDs to their state. The dataset itself is
// immutable; this store is the only mutable state in the service.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*sessionState)}
}

// setAudience replaces the session's cached audience.
func (s *sessionStore) setAudience(id string, a *domain.Audience) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(id).audience = a
}

// audience returns the session's cached audience, nil when none exists.
func (s *sessionStore) audience(id string) *domain.Audience {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.sessions[id]; ok {
		return st.audience
	}
	return nil
}

// appendSchedule adds a scheduled campaign to the session.
func (s *sessionStore) appendSchedule(id string, sc domain.ScheduledCampaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(id)
	st.schedules = append(st.schedules, sc)
}

// schedules returns a copy of the session's scheduled campaigns in
// scheduling order.
func (s *sessionStore) schedules(id string) []domain.ScheduledCampaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.sessions[id]; ok {
		return slices.Clone(st.schedules)
	}
	return nil
}

// state returns the session's state, creating it on first use. Callers
// must hold the write lock.
func (s *sessionStore) state(id string) *sessionState {
	st, ok := s.sessions[id]
	if !ok {
		st = &sessionState{}
		s.sessions[id] = st
	}
	return st
}
