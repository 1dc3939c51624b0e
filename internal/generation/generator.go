package generation

import (
	"context"

	"github.com/giftwise/giftwise-api/internal/domain"
)

// Generator is the interface to the external text-generation model.
// Implementations may fail; callers that need the "never fails" pipeline
// contract wrap a Generator with the fallback templates in this package
// (see service.SuggestionService).
type Generator interface {
	// GenerateSuggestions asks the model for gift suggestions matching the
	// quiz answers. The returned slice has whatever length the model
	// produced; it is not clamped to the requested count.
	GenerateSuggestions(ctx context.Context, answers domain.QuizAnswers) ([]domain.GiftSuggestion, error)

	// GenerateCardMessage asks the model for a short greeting-card message
	// for the given gift and recipient context. The result is trimmed
	// plain text.
	GenerateCardMessage(ctx context.Context, req domain.CardMessageRequest) (string, error)
}
