package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"codefix-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ChallengeLoader loads challenge bank JSONB from Postgres.
type ChallengeLoader struct {
	pool *pgxpool.Pool
}

func NewChallengeLoader(pool *pgxpool.Pool) *ChallengeLoader {
	return &ChallengeLoader{pool: pool}
}

func (l *ChallengeLoader) LoadBank(ctx context.Context, lang domain.Language) (domain.ChallengeBank, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM challenge_banks WHERE language=$1`, string(lang)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ChallengeBank{}, domain.ErrBankNotFound
	}
	if err != nil {
		return domain.ChallengeBank{}, fmt.Errorf("load challenge bank: %w", err)
	}
	var bank domain.ChallengeBank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return domain.ChallengeBank{}, fmt.Errorf("unmarshal challenge bank: %w", err)
	}
	bank.Language = lang
	return bank, nil
}
