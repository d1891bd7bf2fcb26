package postgres

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"codefix-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// LeaderboardStore is the primary leaderboard tier, one row per submission.
type LeaderboardStore struct {
	pool  *pgxpool.Pool
	clock func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewLeaderboardStore(pool *pgxpool.Pool) *LeaderboardStore {
	return &LeaderboardStore{
		pool:  pool,
		clock: time.Now,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *LeaderboardStore) Save(ctx context.Context, entry domain.LeaderboardEntry) error {
	if entry.ID == "" {
		s.mu.Lock()
		entry.ID = domain.NewEntryID(s.clock(), s.rnd)
		s.mu.Unlock()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO leaderboard_entries
			(id, name, email, score, language, date, total_questions, completion_time, avg_time_per_challenge)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.Name, entry.Email, entry.Score, entry.Language, entry.Date,
		entry.TotalQuestions, entry.CompletionTime, entry.AvgTimePerChallenge,
	)
	if err != nil {
		return fmt.Errorf("save leaderboard entry: %w", err)
	}
	return nil
}

// List scans entries, optionally filtered by exact language match. Ranking
// happens in the service layer, matching the other backends.
func (s *LeaderboardStore) List(ctx context.Context, language string) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT id, name, email, score, language, date, total_questions, completion_time, avg_time_per_challenge
		FROM leaderboard_entries`
	args := []interface{}{}
	if language != "" {
		query += ` WHERE language=$1`
		args = append(args, language)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Email, &entry.Score, &entry.Language,
			&entry.Date, &entry.TotalQuestions, &entry.CompletionTime, &entry.AvgTimePerChallenge); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return entries, nil
}
