package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/giftwise-api/internal/generation"
)

func TestCleanModelText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    `[{"title":"x"}]`,
			expected: `[{"title":"x"}]`,
		},
		{
			name:     "strips json code fence",
			input:    "```json\n[{\"title\":\"x\"}]\n```",
			expected: `[{"title":"x"}]`,
		},
		{
			name:     "strips bare code fence",
			input:    "```\nhello\n```",
			expected: "hello",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  \n text \n  ",
			expected: "text",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, cleanModelText(tc.input))
		})
	}
}

func TestParseSuggestions(t *testing.T) {
	t.Parallel()

	validJSON := `[
		{"title": "Cooking Class", "description": "A hands-on class", "reasoning": "They love cooking"},
		{"title": "Novel Set", "description": "A boxed set", "reasoning": "They love reading"}
	]`

	t.Run("parses valid array", func(t *testing.T) {
		t.Parallel()

		suggestions, err := parseSuggestions(validJSON)

		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Cooking Class", suggestions[0].Title)
		assert.Equal(t, "A hands-on class", suggestions[0].Description)
		assert.Equal(t, "They love cooking", suggestions[0].Reasoning)
	})

	t.Run("parses fenced array", func(t *testing.T) {
		t.Parallel()

		suggestions, err := parseSuggestions("```json\n" + validJSON + "\n```")

		require.NoError(t, err)
		assert.Len(t, suggestions, 2)
	})

	t.Run("preserves array length as returned", func(t *testing.T) {
		t.Parallel()

		suggestions, err := parseSuggestions(
			`[{"title": "One", "description": "d", "reasoning": "r"}]`)

		require.NoError(t, err)
		assert.Len(t, suggestions, 1)
	})

	t.Run("empty text is an empty response", func(t *testing.T) {
		t.Parallel()

		_, err := parseSuggestions("   ")

		assert.ErrorIs(t, err, generation.ErrEmptyResponse)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			input string
		}{
			{"not JSON", "here are some gift ideas for you"},
			{"JSON object instead of array", `{"title": "x", "description": "d", "reasoning": "r"}`},
			{"empty array", `[]`},
			{"missing title", `[{"description": "d", "reasoning": "r"}]`},
			{"missing description", `[{"title": "t", "reasoning": "r"}]`},
			{"missing reasoning", `[{"title": "t", "description": "d"}]`},
			{"blank title", `[{"title": "", "description": "d", "reasoning": "r"}]`},
			{"array of strings", `["gift one", "gift two"]`},
			{"truncated JSON", `[{"title": "t", "desc`},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				_, err := parseSuggestions(tc.input)

				assert.ErrorIs(t, err, generation.ErrInvalidResponse)
			})
		}
	})

	t.Run("one bad item rejects the whole response", func(t *testing.T) {
		t.Parallel()

		_, err := parseSuggestions(`[
			{"title": "Good", "description": "d", "reasoning": "r"},
			{"title": "Bad", "description": "", "reasoning": "r"}
		]`)

		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		t.Parallel()

		suggestions, err := parseSuggestions(
			`[{"title": "t", "description": "d", "reasoning": "r", "price": "$20"}]`)

		require.NoError(t, err)
		assert.Len(t, suggestions, 1)
	})
}
