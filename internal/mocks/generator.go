package mocks

import (
	"context"
	"sync"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateSuggestionsFn allows test cases to mock the GenerateSuggestions behavior
	GenerateSuggestionsFn func(ctx context.Context, answers domain.QuizAnswers) ([]domain.GiftSuggestion, error)

	// GenerateCardMessageFn allows test cases to mock the GenerateCardMessage behavior
	GenerateCardMessageFn func(ctx context.Context, req domain.CardMessageRequest) (string, error)

	// Default response values
	Suggestions []domain.GiftSuggestion
	CardMessage string
	Err         error

	// Call tracking for verification
	SuggestionCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateSuggestions was called
		Count int

		// Answers contains all quiz answers passed to GenerateSuggestions calls
		Answers []domain.QuizAnswers
	}

	CardMessageCalls struct {
		mu sync.Mutex

		Count    int
		Requests []domain.CardMessageRequest
	}
}

// GenerateSuggestions implements the generation.Generator interface
func (m *MockGenerator) GenerateSuggestions(
	ctx context.Context,
	answers domain.QuizAnswers,
) ([]domain.GiftSuggestion, error) {
	m.SuggestionCalls.mu.Lock()
	m.SuggestionCalls.Count++
	m.SuggestionCalls.Answers = append(m.SuggestionCalls.Answers, answers)
	m.SuggestionCalls.mu.Unlock()

	if m.GenerateSuggestionsFn != nil {
		return m.GenerateSuggestionsFn(ctx, answers)
	}

	return m.Suggestions, m.Err
}

// GenerateCardMessage implements the generation.Generator interface
func (m *MockGenerator) GenerateCardMessage(
	ctx context.Context,
	req domain.CardMessageRequest,
) (string, error) {
	m.CardMessageCalls.mu.Lock()
	m.CardMessageCalls.Count++
	m.CardMessageCalls.Requests = append(m.CardMessageCalls.Requests, req)
	m.CardMessageCalls.mu.Unlock()

	if m.GenerateCardMessageFn != nil {
		return m.GenerateCardMessageFn(ctx, req)
	}

	return m.CardMessage, m.Err
}

// NewMockGeneratorWithSuggestions creates a MockGenerator that returns the specified suggestions
func NewMockGeneratorWithSuggestions(suggestions []domain.GiftSuggestion) *MockGenerator {
	return &MockGenerator{
		Suggestions: suggestions,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a generation failure
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrGenerationFailed,
	}
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrContentBlocked,
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.SuggestionCalls.mu.Lock()
	m.SuggestionCalls.Count = 0
	m.SuggestionCalls.Answers = nil
	m.SuggestionCalls.mu.Unlock()

	m.CardMessageCalls.mu.Lock()
	m.CardMessageCalls.Count = 0
	m.CardMessageCalls.Requests = nil
	m.CardMessageCalls.mu.Unlock()
}
