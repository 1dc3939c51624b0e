package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/generation"
	"github.com/giftwise/giftwise-api/internal/mocks"
	"github.com/giftwise/giftwise-api/internal/service"
)

func quizAnswers() domain.QuizAnswers {
	return domain.QuizAnswers{
		Age:          "25-34",
		Gender:       "Female",
		Interests:    []string{"Photography", "Travel"},
		Personality:  "Adventurous",
		Budget:       "$50-$100",
		Occasion:     "Birthday",
		Relationship: "Sister",
	}
}

func TestGenerateGiftSuggestions(t *testing.T) {
	t.Parallel()

	t.Run("returns model suggestions on success", func(t *testing.T) {
		t.Parallel()

		expected := []domain.GiftSuggestion{
			{Title: "Camera Strap", Description: "A leather strap", Reasoning: "They love photography"},
		}
		generator := mocks.NewMockGeneratorWithSuggestions(expected)
		svc := service.NewSuggestionService(generator, nil)

		suggestions := svc.GenerateGiftSuggestions(context.Background(), quizAnswers())

		assert.Equal(t, expected, suggestions)
		assert.Equal(t, 1, generator.SuggestionCalls.Count)
	})

	t.Run("passes quiz answers through to the generator", func(t *testing.T) {
		t.Parallel()

		generator := mocks.NewMockGeneratorWithSuggestions([]domain.GiftSuggestion{
			{Title: "t", Description: "d", Reasoning: "r"},
		})
		svc := service.NewSuggestionService(generator, nil)

		answers := quizAnswers()
		svc.GenerateGiftSuggestions(context.Background(), answers)

		require.Len(t, generator.SuggestionCalls.Answers, 1)
		assert.Equal(t, answers, generator.SuggestionCalls.Answers[0])
	})

	t.Run("falls back on generator errors", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			err  error
		}{
			{"generation failed", generation.ErrGenerationFailed},
			{"invalid response", generation.ErrInvalidResponse},
			{"empty response", generation.ErrEmptyResponse},
			{"content blocked", generation.ErrContentBlocked},
			{"transient failure", generation.ErrTransientFailure},
			{"unclassified error", errors.New("connection reset")},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				generator := mocks.NewMockGeneratorWithError(tc.err)
				svc := service.NewSuggestionService(generator, nil)

				suggestions := svc.GenerateGiftSuggestions(context.Background(), quizAnswers())

				assert.Equal(t, generation.FallbackSuggestions(quizAnswers()), suggestions)
			})
		}
	})

	t.Run("fallback stays at five in detailed mode", func(t *testing.T) {
		t.Parallel()

		generator := mocks.MockGeneratorThatFails()
		svc := service.NewSuggestionService(generator, nil)

		answers := quizAnswers()
		answers.QuizMode = domain.QuizModeDetailed
		suggestions := svc.GenerateGiftSuggestions(context.Background(), answers)

		assert.Len(t, suggestions, generation.FallbackSuggestionCount)
	})
}

func TestGenerateGiftCardMessage(t *testing.T) {
	t.Parallel()

	cardReq := domain.CardMessageRequest{
		GiftTitle:       "Camera Strap",
		GiftDescription: "A leather strap",
		RecipientName:   "Maya",
		Occasion:        "Birthday",
		Relationship:    "Sister",
	}

	t.Run("returns model message on success", func(t *testing.T) {
		t.Parallel()

		generator := &mocks.MockGenerator{CardMessage: "Happy birthday, Maya!"}
		svc := service.NewSuggestionService(generator, nil)

		message := svc.GenerateGiftCardMessage(context.Background(), cardReq)

		assert.Equal(t, "Happy birthday, Maya!", message)
	})

	t.Run("falls back on generator error", func(t *testing.T) {
		t.Parallel()

		generator := mocks.MockGeneratorThatFails()
		svc := service.NewSuggestionService(generator, nil)

		message := svc.GenerateGiftCardMessage(context.Background(), cardReq)

		assert.Equal(t,
			generation.FallbackCardMessage(cardReq.Occasion, cardReq.GiftTitle),
			message)
	})
}
