package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"codefix-quiz-service/internal/domain"
)

// SessionRepository abstracts how play sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Put(state domain.SessionState)
	Get(sessionID string) (domain.SessionState, bool)
	Delete(sessionID string)
}

// ChallengeRepository loads challenge banks (from cache/backing store).
type ChallengeRepository interface {
	GetBank(ctx context.Context, lang domain.Language) (domain.ChallengeBank, error)
}

// ChallengeView is what players are shown: the correct solution and the hint
// stay server-side until earned or requested.
type ChallengeView struct {
	Index          int    `json:"index"`
	Total          int    `json:"total"`
	Description    string `json:"description"`
	BrokenCode     string `json:"brokenCode"`
	ExpectedOutput string `json:"expectedOutput"`
	CurrentOutput  string `json:"currentOutput"`
	TimeLimit      int    `json:"timeLimit"`
}

// SubmitResult summarizes the outcome of one submission.
type SubmitResult struct {
	Accepted   bool                   `json:"accepted"`
	TimedOut   bool                   `json:"timedOut"`
	Awarded    int                    `json:"awarded"`
	TotalScore int                    `json:"totalScore"`
	Advanced   bool                   `json:"advanced"`
	Next       *ChallengeView         `json:"next,omitempty"`
	Summary    *domain.SessionSummary `json:"summary,omitempty"`
}

// QuizService runs the code-fix play flow: draw challenges, check
// submissions, award points, advance, finish.
type QuizService struct {
	sessions       SessionRepository
	challenges     ChallengeRepository
	challengeCount int
	timeLimit      int
	now            func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuizService(sessions SessionRepository, challenges ChallengeRepository, challengeCount, timeLimitSeconds int) *QuizService {
	if challengeCount <= 0 {
		challengeCount = 10
	}
	if timeLimitSeconds <= 0 {
		timeLimitSeconds = 60
	}
	return &QuizService{
		sessions:       sessions,
		challenges:     challenges,
		challengeCount: challengeCount,
		timeLimit:      timeLimitSeconds,
		now:            time.Now,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock is test-only for deterministic timestamps.
func (s *QuizService) WithClock(now func() time.Time) *QuizService {
	s.now = now
	return s
}

// Start draws a random challenge sequence for the language and opens a
// session positioned at the first challenge.
func (s *QuizService) Start(ctx context.Context, lang domain.Language, playerName string) (string, ChallengeView, error) {
	bank, err := s.challenges.GetBank(ctx, lang)
	if err != nil {
		return "", ChallengeView{}, err
	}
	if len(bank.Challenges) == 0 {
		return "", ChallengeView{}, domain.ErrBankNotFound
	}

	now := s.now()
	picked := s.draw(bank.Challenges)
	state := domain.NewSessionState(s.newSessionID(now), lang, playerName, picked, now)
	s.sessions.Put(state)

	view, _ := s.viewOf(state)
	return state.ID, view, nil
}

// Hint returns the active challenge's hint and flags the hint as used; the
// flat penalty applies once per challenge no matter how often it is shown.
func (s *QuizService) Hint(_ context.Context, sessionID string) (string, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	challenge, ok := state.Current()
	if !ok {
		return "", domain.ErrSessionFinished
	}
	s.sessions.Put(state.UseHint())
	return challenge.Hint, nil
}

// Submit checks the player's edited code against the active challenge.
// An accepted answer (or an out-of-time one, which scores zero) advances the
// session; a rejected answer inside the time limit leaves it in place so the
// player can retry.
func (s *QuizService) Submit(_ context.Context, sessionID, code string) (SubmitResult, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return SubmitResult{}, domain.ErrSessionNotFound
	}
	challenge, ok := state.Current()
	if !ok {
		return SubmitResult{}, domain.ErrSessionFinished
	}

	now := s.now()
	elapsed := int(now.Sub(state.ChallengeStartedAt) / time.Second)
	timedOut := elapsed > s.timeLimit
	if timedOut {
		elapsed = s.timeLimit
	}

	accepted := !timedOut && Accept(code, challenge.CorrectCode, state.Language, challenge.Rule)
	if !accepted && !timedOut {
		return SubmitResult{TotalScore: state.Score}, nil
	}

	awarded := Points(elapsed, state.HintUsed, accepted)
	return s.advance(state, accepted, timedOut, awarded, elapsed, now), nil
}

// Skip forfeits the active challenge for zero points (timeout or give-up).
func (s *QuizService) Skip(_ context.Context, sessionID string) (SubmitResult, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return SubmitResult{}, domain.ErrSessionNotFound
	}
	if _, ok := state.Current(); !ok {
		return SubmitResult{}, domain.ErrSessionFinished
	}

	now := s.now()
	elapsed := int(now.Sub(state.ChallengeStartedAt) / time.Second)
	if elapsed > s.timeLimit {
		elapsed = s.timeLimit
	}
	return s.advance(state, false, true, 0, elapsed, now), nil
}

func (s *QuizService) advance(state domain.SessionState, accepted, timedOut bool, awarded, elapsed int, now time.Time) SubmitResult {
	state = state.ApplyResult(awarded, elapsed, now)

	result := SubmitResult{
		Accepted:   accepted,
		TimedOut:   timedOut,
		Awarded:    awarded,
		TotalScore: state.Score,
		Advanced:   true,
	}
	if state.Finished {
		summary := state.Summary()
		result.Summary = &summary
		s.sessions.Delete(state.ID)
		return result
	}

	s.sessions.Put(state)
	view, _ := s.viewOf(state)
	result.Next = &view
	return result
}

func (s *QuizService) viewOf(state domain.SessionState) (ChallengeView, bool) {
	challenge, ok := state.Current()
	if !ok {
		return ChallengeView{}, false
	}
	return ChallengeView{
		Index:          state.Index,
		Total:          len(state.Challenges),
		Description:    challenge.Description,
		BrokenCode:     challenge.BrokenCode,
		ExpectedOutput: challenge.ExpectedOutput,
		CurrentOutput:  challenge.CurrentOutput,
		TimeLimit:      s.timeLimit,
	}, true
}

// draw shuffles a copy of the bank and takes the configured count.
func (s *QuizService) draw(challenges []domain.Challenge) []domain.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	picked := make([]domain.Challenge, len(challenges))
	copy(picked, challenges)
	s.rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > s.challengeCount {
		picked = picked[:s.challengeCount]
	}
	return picked
}

func (s *QuizService) newSessionID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewEntryID(now, s.rnd)
}
