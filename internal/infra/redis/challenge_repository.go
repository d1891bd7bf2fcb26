package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"codefix-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// ChallengeLoader fetches a challenge bank from a backing store.
type ChallengeLoader interface {
	LoadBank(ctx context.Context, lang domain.Language) (domain.ChallengeBank, error)
}

// ChallengeRepository caches challenge banks in Redis as JSON blobs and falls
// back to a loader on cache miss.
// Banks are stored as: SET challenges:{language} {json} EX {ttl}
type ChallengeRepository struct {
	client *redis.Client
	loader ChallengeLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewChallengeRepository(client *redis.Client, loader ChallengeLoader, ttl time.Duration) *ChallengeRepository {
	return &ChallengeRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ChallengeRepository) GetBank(ctx context.Context, lang domain.Language) (domain.ChallengeBank, error) {
	key := r.bankKey(lang)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var bank domain.ChallengeBank
		if err := json.Unmarshal(raw, &bank); err == nil {
			return bank, nil
		}
		// corrupt cache entry; fall through and refill
	}

	result, err, _ := r.sf.Do(string(lang), func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
			var bank domain.ChallengeBank
			if err := json.Unmarshal(raw, &bank); err == nil {
				return bank, nil
			}
		}

		bank, err := r.loader.LoadBank(ctx, lang)
		if err != nil {
			return domain.ChallengeBank{}, err
		}

		if raw, err := json.Marshal(bank); err == nil {
			_ = r.client.Set(ctx, key, raw, r.ttlWithJitter()).Err()
		}
		return bank, nil
	})
	if err != nil {
		return domain.ChallengeBank{}, err
	}
	return result.(domain.ChallengeBank), nil
}

func (r *ChallengeRepository) bankKey(lang domain.Language) string {
	return "challenges:" + string(lang)
}

func (r *ChallengeRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
