package app

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"codefix-quiz-service/internal/domain"
)

// LeaderboardRepository is the put/scan contract over the entry store.
// Implementations assign the entry ID at write time when it is empty.
type LeaderboardRepository interface {
	Save(ctx context.Context, entry domain.LeaderboardEntry) error
	List(ctx context.Context, language string) ([]domain.LeaderboardEntry, error)
}

// emailShape is the lightweight local@domain.tld check; the domain allow-list
// does the real gating.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ScoreSubmission is the inbound payload of a finished session.
type ScoreSubmission struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Score          int    `json:"score"`
	Language       string `json:"language"`
	TotalQuestions int    `json:"totalQuestions"`
	CompletionTime int    `json:"completionTime"`
}

// LeaderboardService shapes, validates and persists leaderboard entries and
// serves ranked reads.
type LeaderboardService struct {
	store          LeaderboardRepository
	allowedDomains []string
	now            func() time.Time
}

// NewLeaderboardService wires the service to a store. allowedDomains holds
// bare domain suffixes ("gmail.com"); an empty list disables the domain gate.
func NewLeaderboardService(store LeaderboardRepository, allowedDomains []string) *LeaderboardService {
	return &LeaderboardService{
		store:          store,
		allowedDomains: allowedDomains,
		now:            time.Now,
	}
}

// WithClock is test-only for deterministic Date stamps.
func (s *LeaderboardService) WithClock(now func() time.Time) *LeaderboardService {
	s.now = now
	return s
}

// Submit validates the submission, shapes the entry and hands it to the
// store. Validation failures reject before anything is constructed or saved.
func (s *LeaderboardService) Submit(ctx context.Context, sub ScoreSubmission) (domain.LeaderboardEntry, error) {
	entry, err := s.buildEntry(sub)
	if err != nil {
		return domain.LeaderboardEntry{}, err
	}
	if err := s.store.Save(ctx, entry); err != nil {
		return domain.LeaderboardEntry{}, err
	}
	return entry, nil
}

// List returns entries for the language (empty = all), sorted by score
// descending with a deterministic tie-break: earlier submission first, then
// name.
func (s *LeaderboardService) List(ctx context.Context, language string) ([]domain.LeaderboardEntry, error) {
	entries, err := s.store.List(ctx, language)
	if err != nil {
		return nil, err
	}
	SortEntries(entries)
	return entries, nil
}

// SortEntries orders a leaderboard in place: score descending, then earlier
// date, then name. The sort is stable so equal keys keep store order.
func SortEntries(entries []domain.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Name < entries[j].Name
	})
}

func (s *LeaderboardService) buildEntry(sub ScoreSubmission) (domain.LeaderboardEntry, error) {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		return domain.LeaderboardEntry{}, domain.ErrNameRequired
	}

	email := strings.ToLower(strings.TrimSpace(sub.Email))
	if !emailShape.MatchString(email) {
		return domain.LeaderboardEntry{}, domain.ErrInvalidEmail
	}
	if !s.domainAllowed(email) {
		return domain.LeaderboardEntry{}, domain.ErrEmailDomainNotAllowed
	}

	// The language is stored as given; GET filtering is an exact match, so
	// rewriting the casing here would break round-trips.
	language := strings.TrimSpace(sub.Language)
	if language == "" {
		return domain.LeaderboardEntry{}, domain.ErrLanguageRequired
	}
	if sub.Score < 0 {
		return domain.LeaderboardEntry{}, domain.ErrInvalidScore
	}
	if sub.TotalQuestions <= 0 {
		return domain.LeaderboardEntry{}, domain.ErrInvalidQuestionCount
	}
	if sub.CompletionTime < 0 {
		return domain.LeaderboardEntry{}, domain.ErrInvalidCompletionTime
	}

	return domain.LeaderboardEntry{
		Name:                name,
		Email:               email,
		Score:               sub.Score,
		Language:            language,
		Date:                s.now().UTC(),
		TotalQuestions:      sub.TotalQuestions,
		CompletionTime:      sub.CompletionTime,
		AvgTimePerChallenge: domain.AvgTime(sub.CompletionTime, sub.TotalQuestions),
	}, nil
}

func (s *LeaderboardService) domainAllowed(email string) bool {
	if len(s.allowedDomains) == 0 {
		return true
	}
	for _, d := range s.allowedDomains {
		if strings.HasSuffix(email, "@"+strings.ToLower(d)) {
			return true
		}
	}
	return false
}
