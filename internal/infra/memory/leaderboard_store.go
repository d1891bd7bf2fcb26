package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"codefix-quiz-service/internal/domain"
)

// LeaderboardStore keeps entries in memory. It backs tests and development
// runs, and doubles as the local fallback cache tier when no Redis is
// configured.
type LeaderboardStore struct {
	clock func() time.Time

	mu      sync.RWMutex
	rnd     *rand.Rand
	entries []domain.LeaderboardEntry
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{
		clock: time.Now,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *LeaderboardStore) Save(_ context.Context, entry domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = domain.NewEntryID(s.clock(), s.rnd)
	}
	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries in insertion order; ranking is the caller's concern.
func (s *LeaderboardStore) List(_ context.Context, language string) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LeaderboardEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if language != "" && entry.Language != language {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
