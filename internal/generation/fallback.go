package generation

import (
	"fmt"
	"strings"

	"github.com/giftwise/giftwise-api/internal/domain"
)

// Generic phrases substituted when the quiz carries no usable interests.
const (
	genericHobbies     = "their hobbies"
	genericInterests   = "their interests"
	genericExperiences = "new experiences"
)

// FallbackSuggestionCount is the fixed number of fallback suggestions.
// Note this stays 5 even for detailed-mode requests that asked the model for
// 7 -- the fallback set is a static template list, not a model substitute.
const FallbackSuggestionCount = 5

// FallbackSuggestions produces a deterministic set of five template-based
// gift suggestions from the quiz answers. It performs no I/O and never fails,
// guaranteeing the caller always receives something plausible when the model
// backend is unavailable or returns unusable output.
func FallbackSuggestions(answers domain.QuizAnswers) []domain.GiftSuggestion {
	firstInterest := genericHobbies
	experienceInterest := genericExperiences
	if len(answers.Interests) > 0 && answers.Interests[0] != "" {
		firstInterest = answers.Interests[0]
		experienceInterest = answers.Interests[0]
	}

	combinedInterests := genericInterests
	if len(answers.Interests) > 0 {
		n := len(answers.Interests)
		if n > 2 {
			n = 2
		}
		if joined := strings.Join(answers.Interests[:n], " and "); strings.TrimSpace(joined) != "" {
			combinedInterests = joined
		}
	}

	budget := strings.ToLower(answers.Budget)
	occasion := strings.ToLower(answers.Occasion)
	personality := strings.ToLower(answers.Personality)
	relationship := strings.ToLower(answers.Relationship)

	return []domain.GiftSuggestion{
		{
			Title:       "Hobby Gift",
			Description: fmt.Sprintf("A %s gift related to %s", budget, firstInterest),
			Reasoning: fmt.Sprintf(
				"Since they love %s, this gift aligns perfectly with their passions and shows you pay attention to what matters to them.",
				firstInterest),
		},
		{
			Title: "Personalized Present",
			Description: fmt.Sprintf(
				"A personalized %s gift that matches their %s personality",
				occasion, personality),
			Reasoning: fmt.Sprintf(
				"Their %s nature means they'll appreciate something made just for them, especially for this special %s.",
				personality, occasion),
		},
		{
			Title: "Thoughtful Choice",
			Description: fmt.Sprintf(
				"Something thoughtful for a %s in the %s age range",
				relationship, answers.Age),
			Reasoning: fmt.Sprintf(
				"As your %s, they deserve something that reflects the care and thought you put into your relationship.",
				relationship),
		},
		{
			Title: "Interest Combo",
			Description: fmt.Sprintf(
				"A creative gift that combines their love for %s",
				combinedInterests),
			Reasoning: "By combining multiple interests, this gift shows you understand the full scope of what they enjoy and care about.",
		},
		{
			Title: "Experience Gift",
			Description: fmt.Sprintf(
				"An experience or item perfect for someone who is %s and enjoys %s",
				personality, experienceInterest),
			Reasoning: fmt.Sprintf(
				"Their %s personality means they'll love something that creates memories and aligns with their interest in %s.",
				personality, experienceInterest),
		},
	}
}

// FallbackCardMessage produces the fixed greeting-card message used when the
// model cannot supply one. The message references the occasion and the
// lower-cased gift title; it deliberately never mentions the sender.
func FallbackCardMessage(occasion, giftTitle string) string {
	return fmt.Sprintf(
		"Happy %s! I thought you'd love this %s because it perfectly matches your personality. Hope it brings you joy! \U0001F49D",
		occasion, strings.ToLower(giftTitle))
}
