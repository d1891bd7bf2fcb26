package redis

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"codefix-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - A local in-memory map serves reads on the hot path.
//   - Every Put also writes a JSON snapshot to Redis with a TTL, so a session
//     survives a process restart and abandoned sessions expire on their own.
//   - Get falls back to the snapshot on a local miss.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]domain.SessionState
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]domain.SessionState),
	}
}

func (s *SessionStore) Put(state domain.SessionState) {
	s.mu.Lock()
	s.sessions[state.ID] = state
	s.mu.Unlock()

	// best-effort snapshot
	if raw, err := json.Marshal(state); err == nil {
		_ = s.client.Set(context.Background(), s.key(state.ID), raw, s.ttl).Err()
	}
}

func (s *SessionStore) Get(sessionID string) (domain.SessionState, bool) {
	s.mu.RLock()
	state, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return state, true
	}

	raw, err := s.client.Get(context.Background(), s.key(sessionID)).Bytes()
	if err != nil {
		return domain.SessionState{}, false
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.SessionState{}, false
	}

	s.mu.Lock()
	s.sessions[sessionID] = state
	s.mu.Unlock()
	return state, true
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
