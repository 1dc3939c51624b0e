package domain

import "errors"

// QuizMode selects how many suggestions a quiz request asks the model for.
type QuizMode string

// Possible quiz modes. An empty mode is treated as QuizModeQuick.
const (
	QuizModeQuick    QuizMode = "quick"
	QuizModeDetailed QuizMode = "detailed"
)

// Suggestion counts per quiz mode.
const (
	QuickSuggestionCount    = 5
	DetailedSuggestionCount = 7
)

// Common validation errors for QuizAnswers.
var (
	ErrEmptyAge          = errors.New("age cannot be empty")
	ErrEmptyGender       = errors.New("gender cannot be empty")
	ErrNoInterests       = errors.New("at least one interest is required")
	ErrEmptyPersonality  = errors.New("personality cannot be empty")
	ErrEmptyBudget       = errors.New("budget cannot be empty")
	ErrEmptyOccasion     = errors.New("occasion cannot be empty")
	ErrEmptyRelationship = errors.New("relationship cannot be empty")
	ErrInvalidQuizMode   = errors.New("invalid quiz mode")
)

// QuizAnswers holds the structured answers a user gives about a gift
// recipient. All fields except QuizMode are required.
type QuizAnswers struct {
	Age          string   `json:"age"`
	Gender       string   `json:"gender"`
	Interests    []string `json:"interests"`
	Personality  string   `json:"personality"`
	Budget       string   `json:"budget"`
	Occasion     string   `json:"occasion"`
	Relationship string   `json:"relationship"`
	QuizMode     QuizMode `json:"quizMode,omitempty"`
}

// Validate checks that all required quiz fields are present.
// Returns the first validation error encountered.
func (q *QuizAnswers) Validate() error {
	if q.Age == "" {
		return ErrEmptyAge
	}
	if q.Gender == "" {
		return ErrEmptyGender
	}
	if len(q.Interests) == 0 {
		return ErrNoInterests
	}
	if q.Personality == "" {
		return ErrEmptyPersonality
	}
	if q.Budget == "" {
		return ErrEmptyBudget
	}
	if q.Occasion == "" {
		return ErrEmptyOccasion
	}
	if q.Relationship == "" {
		return ErrEmptyRelationship
	}
	switch q.QuizMode {
	case "", QuizModeQuick, QuizModeDetailed:
	default:
		return ErrInvalidQuizMode
	}
	return nil
}

// SuggestionCount returns how many suggestions this quiz asks the model for:
// 7 in detailed mode, 5 otherwise.
func (q *QuizAnswers) SuggestionCount() int {
	if q.QuizMode == QuizModeDetailed {
		return DetailedSuggestionCount
	}
	return QuickSuggestionCount
}
