package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/generation"
)

// cleanModelText strips markdown code-fence markers from model output and
// trims surrounding whitespace. Models sometimes wrap JSON in ```json fences
// despite explicit instructions not to.
func cleanModelText(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// parseSuggestions converts raw model text into domain suggestions.
// The text must clean up to a JSON array of objects each carrying non-empty
// title, description, and reasoning strings; anything else returns
// generation.ErrInvalidResponse. The array length is passed through as-is.
func parseSuggestions(text string) ([]domain.GiftSuggestion, error) {
	cleaned := cleanModelText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: no text to parse", generation.ErrEmptyResponse)
	}

	var items []suggestionSchema
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON array: %v",
			generation.ErrInvalidResponse, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty suggestion array", generation.ErrInvalidResponse)
	}

	suggestions := make([]domain.GiftSuggestion, 0, len(items))
	for i, item := range items {
		if item.Title == "" {
			return nil, fmt.Errorf("%w: suggestion %d missing title",
				generation.ErrInvalidResponse, i)
		}
		if item.Description == "" {
			return nil, fmt.Errorf("%w: suggestion %d missing description",
				generation.ErrInvalidResponse, i)
		}
		if item.Reasoning == "" {
			return nil, fmt.Errorf("%w: suggestion %d missing reasoning",
				generation.ErrInvalidResponse, i)
		}
		suggestions = append(suggestions, domain.GiftSuggestion{
			Title:       item.Title,
			Description: item.Description,
			Reasoning:   item.Reasoning,
		})
	}

	return suggestions, nil
}
