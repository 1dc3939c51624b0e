package service

import (
	"context"
	"log/slog"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/generation"
)

// SuggestionService is the outward-facing suggestion pipeline. Its contract
// is that a model-backend failure never becomes a caller-visible error:
// every generator failure path yields the deterministic fallback instead.
// Availability of a plausible suggestion set is prioritized over freshness.
type SuggestionService struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewSuggestionService creates a SuggestionService around the given generator.
func NewSuggestionService(generator generation.Generator, logger *slog.Logger) *SuggestionService {
	if generator == nil {
		panic("generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SuggestionService{
		generator: generator,
		logger:    logger.With(slog.String("component", "suggestion_service")),
	}
}

// GenerateGiftSuggestions returns gift suggestions for the quiz answers.
// Callers must validate the answers first; this method assumes they are
// complete. On success the returned slice has whatever length the model
// produced. On any generator error it returns the fixed five-entry fallback
// list; note the fallback stays at five entries even for detailed-mode
// requests that asked the model for seven.
func (s *SuggestionService) GenerateGiftSuggestions(
	ctx context.Context,
	answers domain.QuizAnswers,
) []domain.GiftSuggestion {
	suggestions, err := s.generator.GenerateSuggestions(ctx, answers)
	if err != nil {
		s.logger.WarnContext(ctx, "suggestion generation failed, using fallback",
			slog.String("error", err.Error()),
			slog.String("quiz_mode", string(answers.QuizMode)))
		return generation.FallbackSuggestions(answers)
	}
	return suggestions
}

// GenerateGiftCardMessage returns a greeting-card message for the given gift
// context. On any generator error it returns the fixed fallback sentence
// built from the occasion and gift title.
func (s *SuggestionService) GenerateGiftCardMessage(
	ctx context.Context,
	req domain.CardMessageRequest,
) string {
	message, err := s.generator.GenerateCardMessage(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "card message generation failed, using fallback",
			slog.String("error", err.Error()))
		return generation.FallbackCardMessage(req.Occasion, req.GiftTitle)
	}
	return message
}
