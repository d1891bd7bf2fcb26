package memory

import (
	"sync"

	"codefix-quiz-service/internal/domain"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.SessionState
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.SessionState),
	}
}

func (s *SessionStore) Put(state domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.ID] = state
}

func (s *SessionStore) Get(sessionID string) (domain.SessionState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	return state, ok
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
