package domain

import "time"

// SessionState is the serializable state of one player's run through a fixed
// sequence of challenges. All transitions are pure: they take a value and
// return the next value, so the flow is unit-testable without any transport
// or storage attached.
type SessionState struct {
	ID                 string      `json:"id"`
	Language           Language    `json:"language"`
	PlayerName         string      `json:"playerName"`
	Challenges         []Challenge `json:"challenges"`
	Index              int         `json:"index"`
	Score              int         `json:"score"`
	ElapsedSeconds     int         `json:"elapsedSeconds"`
	HintUsed           bool        `json:"hintUsed"`
	ChallengeStartedAt time.Time   `json:"challengeStartedAt"`
	Finished           bool        `json:"finished"`
}

// SessionSummary is the outcome of a finished session, shaped for the
// leaderboard submission that follows.
type SessionSummary struct {
	Language            Language `json:"language"`
	Score               int      `json:"score"`
	TotalQuestions      int      `json:"totalQuestions"`
	CompletionTime      int      `json:"completionTime"`
	AvgTimePerChallenge int      `json:"avgTimePerChallenge"`
}

// NewSessionState creates a session positioned at the first challenge.
func NewSessionState(id string, lang Language, playerName string, challenges []Challenge, now time.Time) SessionState {
	return SessionState{
		ID:                 id,
		Language:           lang,
		PlayerName:         playerName,
		Challenges:         challenges,
		ChallengeStartedAt: now,
	}
}

// Current returns the active challenge, or false when the session is done.
func (s SessionState) Current() (Challenge, bool) {
	if s.Finished || s.Index >= len(s.Challenges) {
		return Challenge{}, false
	}
	return s.Challenges[s.Index], true
}

// UseHint marks the hint as consumed for the active challenge. Repeated calls
// on the same challenge cost nothing extra.
func (s SessionState) UseHint() SessionState {
	s.HintUsed = true
	return s
}

// ApplyResult accumulates the awarded points and elapsed time for the active
// challenge and advances to the next one, finishing the session after the
// last challenge.
func (s SessionState) ApplyResult(awarded, timeSpent int, now time.Time) SessionState {
	if s.Finished {
		return s
	}
	s.Score += awarded
	s.ElapsedSeconds += timeSpent
	s.Index++
	s.HintUsed = false
	s.ChallengeStartedAt = now
	if s.Index >= len(s.Challenges) {
		s.Finished = true
	}
	return s
}

// Summary reduces a session to its leaderboard-facing outcome.
func (s SessionState) Summary() SessionSummary {
	total := len(s.Challenges)
	avg := 0
	if total > 0 {
		avg = AvgTime(s.ElapsedSeconds, total)
	}
	return SessionSummary{
		Language:            s.Language,
		Score:               s.Score,
		TotalQuestions:      total,
		CompletionTime:      s.ElapsedSeconds,
		AvgTimePerChallenge: avg,
	}
}
