// Package fallback composes two leaderboard tiers into one store: a primary
// remote store and a local cache. The policy is fixed: writes go to the cache
// unconditionally alongside the primary attempt, and reads serve the cache
// when the primary fails (read-only degradation, no write retry).
package fallback

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"codefix-quiz-service/internal/app"
	"codefix-quiz-service/internal/domain"
)

// Store implements app.LeaderboardRepository over a primary and a cache tier.
type Store struct {
	primary app.LeaderboardRepository
	cache   app.LeaderboardRepository
	clock   func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(primary, cache app.LeaderboardRepository) *Store {
	return &Store{
		primary: primary,
		cache:   cache,
		clock:   time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Save assigns the entry identity here so both tiers hold the same row, then
// writes the cache first and the primary after. The primary's error is the
// caller's answer; a cache failure alone only logs.
func (s *Store) Save(ctx context.Context, entry domain.LeaderboardEntry) error {
	if entry.ID == "" {
		s.mu.Lock()
		entry.ID = domain.NewEntryID(s.clock(), s.rnd)
		s.mu.Unlock()
	}

	if err := s.cache.Save(ctx, entry); err != nil {
		log.Printf("leaderboard cache write failed: %v", err)
	}
	return s.primary.Save(ctx, entry)
}

// List reads from the primary and falls back to the cache when it fails.
func (s *Store) List(ctx context.Context, language string) ([]domain.LeaderboardEntry, error) {
	entries, err := s.primary.List(ctx, language)
	if err == nil {
		return entries, nil
	}
	log.Printf("leaderboard primary read failed, serving cache: %v", err)

	cached, cacheErr := s.cache.List(ctx, language)
	if cacheErr != nil {
		return nil, err // the primary failure is the more useful signal
	}
	return cached, nil
}
