package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a play session does not exist or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionFinished is returned when acting on a session that already completed.
	ErrSessionFinished = errors.New("session already finished")
	// ErrUnknownLanguage indicates a language outside the supported set.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrBankNotFound indicates the challenge bank could not be loaded.
	ErrBankNotFound = errors.New("challenge bank not found")
	// ErrNameRequired rejects a leaderboard submission with a blank name.
	ErrNameRequired = errors.New("name is required")
	// ErrLanguageRequired rejects a leaderboard submission with a blank language.
	ErrLanguageRequired = errors.New("language is required")
	// ErrInvalidEmail rejects an email that does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrEmailDomainNotAllowed rejects an email outside the allowed domain set.
	ErrEmailDomainNotAllowed = errors.New("email domain not allowed")
	// ErrInvalidScore rejects a negative score.
	ErrInvalidScore = errors.New("score must be a non-negative integer")
	// ErrInvalidQuestionCount rejects a non-positive question count.
	ErrInvalidQuestionCount = errors.New("totalQuestions must be a positive integer")
	// ErrInvalidCompletionTime rejects a negative completion time.
	ErrInvalidCompletionTime = errors.New("completionTime must be a non-negative integer")
)
