package domain

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Language identifies one of the supported challenge banks.
type Language string

const (
	LangPython Language = "python"
	LangJava   Language = "java"
	LangHTML   Language = "html"
	LangCSS    Language = "css"
)

// Languages lists every supported language in catalog order.
func Languages() []Language {
	return []Language{LangPython, LangJava, LangHTML, LangCSS}
}

// ParseLanguage resolves a case-insensitive language name.
func ParseLanguage(raw string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "python":
		return LangPython, nil
	case "java":
		return LangJava, nil
	case "html":
		return LangHTML, nil
	case "css":
		return LangCSS, nil
	}
	return "", ErrUnknownLanguage
}

// RuleTag selects the narrow heuristic a challenge falls back to when the
// normalized comparison rejects. Challenges carry the tag explicitly instead
// of the acceptance logic sniffing keywords out of the description text.
type RuleTag string

const (
	RuleNone           RuleTag = ""
	RuleClosingParen   RuleTag = "closing-paren"
	RuleIndentation    RuleTag = "indentation"
	RuleColon          RuleTag = "colon"
	RuleSemicolonCount RuleTag = "semicolon-count"
	RuleClosingTag     RuleTag = "closing-tag"
	RuleBalancedQuotes RuleTag = "balanced-quotes"
	RuleBraceBalance   RuleTag = "brace-balance"
)

// Challenge is one broken-code exercise with its known-correct fix.
// Records are immutable once loaded from the catalog.
type Challenge struct {
	ID             int      `json:"id"`
	Description    string   `json:"description"`
	BrokenCode     string   `json:"brokenCode"`
	CorrectCode    string   `json:"correctCode"`
	ExpectedOutput string   `json:"expectedOutput"`
	CurrentOutput  string   `json:"currentOutput"`
	Hint           string   `json:"hint"`
	Rule           RuleTag  `json:"rule,omitempty"`
	Language       Language `json:"language,omitempty"`
}

// ChallengeBank is the full authored challenge set for one language.
type ChallengeBank struct {
	Language   Language    `json:"language"`
	Challenges []Challenge `json:"challenges"`
}

// LeaderboardEntry is one persisted record of a completed session.
type LeaderboardEntry struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email,omitempty"`
	Score               int       `json:"score"`
	Language            string    `json:"language"`
	Date                time.Time `json:"date"`
	TotalQuestions      int       `json:"totalQuestions"`
	CompletionTime      int       `json:"completionTime"`
	AvgTimePerChallenge int       `json:"avgTimePerChallenge"`
}

// NewEntryID assigns a store identity: millisecond timestamp plus a random
// suffix, unique enough for independent, unordered writes.
func NewEntryID(now time.Time, rnd *rand.Rand) string {
	return fmt.Sprintf("%d-%09x", now.UnixMilli(), rnd.Int31())
}

// AvgTime computes the per-challenge average, rounded half up.
// Callers must guard totalQuestions > 0.
func AvgTime(completionTime, totalQuestions int) int {
	return (completionTime*2 + totalQuestions) / (totalQuestions * 2)
}
