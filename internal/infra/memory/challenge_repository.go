package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"codefix-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ChallengeLoader fetches a challenge bank from a backing store.
type ChallengeLoader interface {
	LoadBank(ctx context.Context, lang domain.Language) (domain.ChallengeBank, error)
}

// ChallengeRepository caches banks with TTL to avoid repeated store hits.
type ChallengeRepository struct {
	loader ChallengeLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[domain.Language]cachedBank
}

type cachedBank struct {
	bank      domain.ChallengeBank
	expiresAt time.Time
}

func NewChallengeRepository(loader ChallengeLoader, ttl time.Duration) *ChallengeRepository {
	return &ChallengeRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[domain.Language]cachedBank),
	}
}

func (r *ChallengeRepository) GetBank(ctx context.Context, lang domain.Language) (domain.ChallengeBank, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[lang]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.bank, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(string(lang), func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[lang]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.bank, nil
		}
		r.mu.RUnlock()

		bank, err := r.loader.LoadBank(ctx, lang)
		if err != nil {
			return domain.ChallengeBank{}, err
		}

		r.mu.Lock()
		r.cache[lang] = cachedBank{
			bank:      bank,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return bank, nil
	})
	if err != nil {
		return domain.ChallengeBank{}, err
	}
	return result.(domain.ChallengeBank), nil
}

// StaticChallengeLoader is a loader backed by an in-memory bank map (the
// built-in catalog, or fixtures in tests).
type StaticChallengeLoader struct {
	banks map[domain.Language]domain.ChallengeBank
}

func NewStaticChallengeLoader(banks map[domain.Language]domain.ChallengeBank) *StaticChallengeLoader {
	return &StaticChallengeLoader{banks: banks}
}

func (l *StaticChallengeLoader) LoadBank(_ context.Context, lang domain.Language) (domain.ChallengeBank, error) {
	if bank, ok := l.banks[lang]; ok {
		return bank, nil
	}
	return domain.ChallengeBank{}, domain.ErrBankNotFound
}

func (r *ChallengeRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
