package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"codefix-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// LeaderboardCache is the secondary tier of the leaderboard store: every
// accepted submission is written here unconditionally, and reads serve the
// cached copy when the primary store is down.
// Entries are stored as: HSET leaderboard:entries {id} {json}
type LeaderboardCache struct {
	client *redis.Client
	clock  func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *LeaderboardCache) Save(ctx context.Context, entry domain.LeaderboardEntry) error {
	if entry.ID == "" {
		c.mu.Lock()
		entry.ID = domain.NewEntryID(c.clock(), c.rnd)
		c.mu.Unlock()
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	if err := c.client.HSet(ctx, entriesKey, entry.ID, raw).Err(); err != nil {
		return fmt.Errorf("cache entry: %w", err)
	}
	return nil
}

func (c *LeaderboardCache) List(ctx context.Context, language string) ([]domain.LeaderboardEntry, error) {
	rows, err := c.client.HGetAll(ctx, entriesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read cached leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for _, raw := range rows {
		var entry domain.LeaderboardEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue // skip corrupt rows rather than failing the read
		}
		if language != "" && entry.Language != language {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

const entriesKey = "leaderboard:entries"
