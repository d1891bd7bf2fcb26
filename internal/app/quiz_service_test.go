package app_test

import (
	"context"
	"testing"
	"time"

	"codefix-quiz-service/internal/app"
	"codefix-quiz-service/internal/domain"
	"codefix-quiz-service/internal/infra/memory"
)

func testBanks() map[domain.Language]domain.ChallengeBank {
	return map[domain.Language]domain.ChallengeBank{
		domain.LangPython: {
			Language: domain.LangPython,
			Challenges: []domain.Challenge{
				{
					ID:          1,
					Description: "Fix the missing colon in the for loop",
					BrokenCode:  "for i in range(3)\n    print(i)",
					CorrectCode: "for i in range(3):\n    print(i)",
					Hint:        "For loops need a colon at the end",
					Rule:        domain.RuleColon,
				},
				{
					ID:          2,
					Description: "Fix the list indexing error",
					BrokenCode:  "numbers = [1, 2, 3]\nprint(numbers[3])",
					CorrectCode: "numbers = [1, 2, 3]\nprint(numbers[2])",
					Hint:        "Remember that list indices start from 0",
				},
			},
		},
	}
}

func newTestService(t *testing.T, now func() time.Time) (*app.QuizService, *memory.SessionStore) {
	t.Helper()
	sessions := memory.NewSessionStore()
	challenges := memory.NewChallengeRepository(memory.NewStaticChallengeLoader(testBanks()), 5*time.Minute)
	return app.NewQuizService(sessions, challenges, 2, 60).WithClock(now), sessions
}

// solutionFor reads the active challenge's canonical fix out of the session
// store; the service itself never hands the solution to the client.
func solutionFor(t *testing.T, sessions *memory.SessionStore, sessionID string) string {
	t.Helper()
	state, ok := sessions.Get(sessionID)
	if !ok {
		t.Fatalf("session %s not in store", sessionID)
	}
	challenge, ok := state.Current()
	if !ok {
		t.Fatalf("session %s has no active challenge", sessionID)
	}
	return challenge.CorrectCode
}

func TestPlayFlowScoresAndFinishes(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	service, sessions := newTestService(t, func() time.Time { return current })

	sessionID, first, err := service.Start(ctx, domain.LangPython, "Alice")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if first.Index != 0 || first.Total != 2 || first.TimeLimit != 60 {
		t.Fatalf("unexpected first view %+v", first)
	}
	if first.BrokenCode == "" || first.Description == "" {
		t.Fatalf("expected challenge content in view %+v", first)
	}

	// A wrong answer inside the limit does not advance.
	current = current.Add(5 * time.Second)
	result, err := service.Submit(ctx, sessionID, "completely wrong")
	if err != nil {
		t.Fatalf("submit wrong: %v", err)
	}
	if result.Accepted || result.Advanced {
		t.Fatalf("expected rejected submission to stay in place, got %+v", result)
	}

	// Ask for the hint, then answer correctly at 20s: tier 20 minus the
	// hint penalty.
	hint, err := service.Hint(ctx, sessionID)
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if hint == "" {
		t.Fatalf("expected a hint")
	}
	solution := solutionFor(t, sessions, sessionID)
	current = current.Add(15 * time.Second)
	result, err = service.Submit(ctx, sessionID, solution)
	if err != nil {
		t.Fatalf("submit correct: %v", err)
	}
	if !result.Accepted || result.Awarded != 15 || result.TotalScore != 15 {
		t.Fatalf("expected 15 points (20 - hint penalty), got %+v", result)
	}
	if result.Next == nil || result.Next.Index != 1 {
		t.Fatalf("expected second challenge next, got %+v", result)
	}

	// Solve the second challenge in 10s with no hint: full 25 points.
	solution = solutionFor(t, sessions, sessionID)
	current = current.Add(10 * time.Second)
	result, err = service.Submit(ctx, sessionID, solution)
	if err != nil {
		t.Fatalf("submit final: %v", err)
	}
	if result.Summary == nil {
		t.Fatalf("expected summary after last challenge, got %+v", result)
	}
	if result.Summary.Score != 40 || result.Summary.TotalQuestions != 2 {
		t.Fatalf("unexpected summary %+v", result.Summary)
	}
	if result.Summary.CompletionTime != 30 || result.Summary.AvgTimePerChallenge != 15 {
		t.Fatalf("unexpected timing %+v", result.Summary)
	}

	// The session is gone once finished.
	if _, err := service.Submit(ctx, sessionID, "anything"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session-not-found after finish, got %v", err)
	}
}

func TestSubmitAfterTimeLimitScoresZero(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	service, sessions := newTestService(t, func() time.Time { return current })

	sessionID, _, err := service.Start(ctx, domain.LangPython, "Alice")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Even the correct fix scores nothing past the limit, and the session
	// moves on.
	solution := solutionFor(t, sessions, sessionID)
	current = current.Add(90 * time.Second)
	result, err := service.Submit(ctx, sessionID, solution)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Accepted || !result.TimedOut || result.Awarded != 0 {
		t.Fatalf("expected timed-out zero award, got %+v", result)
	}
	if !result.Advanced || result.Next == nil {
		t.Fatalf("expected timeout to advance the session, got %+v", result)
	}
}

func TestSkipForfeitsChallenge(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	service, _ := newTestService(t, func() time.Time { return current })

	sessionID, _, err := service.Start(ctx, domain.LangPython, "Alice")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	current = current.Add(30 * time.Second)
	result, err := service.Skip(ctx, sessionID)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if result.Awarded != 0 || !result.Advanced || result.Next == nil {
		t.Fatalf("expected zero-point advance, got %+v", result)
	}
	if result.TotalScore != 0 {
		t.Fatalf("expected score untouched by skip, got %+v", result)
	}
}

func TestUnknownSessionAndLanguage(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, time.Now)

	if _, err := service.Hint(ctx, "nope"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session error, got %v", err)
	}
	if _, err := service.Submit(ctx, "nope", "x"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session error, got %v", err)
	}
	if _, _, err := service.Start(ctx, domain.LangJava, "Alice"); err != domain.ErrBankNotFound {
		t.Fatalf("expected bank error, got %v", err)
	}
}

func TestStartDrawsAtMostConfiguredCount(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionStore()
	challenges := memory.NewChallengeRepository(memory.NewStaticChallengeLoader(testBanks()), 5*time.Minute)
	service := app.NewQuizService(sessions, challenges, 1, 60)

	_, first, err := service.Start(ctx, domain.LangPython, "Alice")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if first.Total != 1 {
		t.Fatalf("expected a single drawn challenge, got total %d", first.Total)
	}
}
