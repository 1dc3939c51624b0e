package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/giftwise-api/internal/config"
	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/generation"
)

// stubCaller is a modelCaller test double that replays canned responses and
// records the prompts it receives.
type stubCaller struct {
	mu        sync.Mutex
	responses []stubResponse
	calls     int
	prompts   []string
	models    []string
}

type stubResponse struct {
	text string
	err  error
}

func (s *stubCaller) generateText(ctx context.Context, model, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)
	s.models = append(s.models, model)

	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	resp := s.responses[idx]
	return resp.text, resp.err
}

func (s *stubCaller) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// writeTestTemplates creates minimal prompt templates in a temp dir so the
// generator can be constructed without the repository's prompts directory.
func writeTestTemplates(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	suggestionTmpl := "Suggest {{.Count}} gifts for a {{.Age}} {{.Gender}} " +
		"who likes {{.Interests}}, is {{.Personality}}, budget {{.Budget}}, " +
		"occasion {{.Occasion}}, relationship {{.Relationship}}."
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, suggestionTemplateFile), []byte(suggestionTmpl), 0o600))

	cardTmpl := "Write a card for {{.RecipientName}} about {{.GiftTitle}} " +
		"({{.GiftDescription}}) for {{.Occasion}} from {{.Sender}}, their {{.Relationship}}."
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, cardTemplateFile), []byte(cardTmpl), 0o600))

	return dir
}

func testLLMConfig(dir string) config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:          "test-api-key",
		ModelName:             "gemini-2.5-flash",
		PromptTemplateDir:     dir,
		MaxRetries:            2,
		RetryDelaySeconds:     1,
		RequestTimeoutSeconds: 5,
	}
}

func newTestGenerator(t *testing.T, caller modelCaller) *Generator {
	t.Helper()

	dir := writeTestTemplates(t)
	gen, err := newGeneratorWithCaller(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		testLLMConfig(dir),
		caller,
	)
	require.NoError(t, err)
	return gen
}

func quizAnswers() domain.QuizAnswers {
	return domain.QuizAnswers{
		Age:          "25-34",
		Gender:       "Male",
		Interests:    []string{"Gaming", "Cooking"},
		Personality:  "Creative",
		Budget:       "$50-$100",
		Occasion:     "Birthday",
		Relationship: "Brother",
	}
}

const validSuggestionJSON = `[
	{"title": "Game Night Kit", "description": "A party game bundle", "reasoning": "They love gaming"},
	{"title": "Chef Knife", "description": "A quality kitchen knife", "reasoning": "They love cooking"}
]`

func TestGenerateSuggestions(t *testing.T) {
	t.Parallel()

	t.Run("returns parsed suggestions on success", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{{text: validSuggestionJSON}}}
		gen := newTestGenerator(t, caller)

		suggestions, err := gen.GenerateSuggestions(context.Background(), quizAnswers())

		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Game Night Kit", suggestions[0].Title)
		assert.Equal(t, 1, caller.callCount())
	})

	t.Run("prompt interpolates quiz answers and count", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{{text: validSuggestionJSON}}}
		gen := newTestGenerator(t, caller)

		_, err := gen.GenerateSuggestions(context.Background(), quizAnswers())
		require.NoError(t, err)

		require.Len(t, caller.prompts, 1)
		prompt := caller.prompts[0]
		assert.Contains(t, prompt, "Suggest 5 gifts")
		assert.Contains(t, prompt, "Gaming, Cooking")
		assert.Contains(t, prompt, "$50-$100")
		assert.Equal(t, "gemini-2.5-flash", caller.models[0])
	})

	t.Run("detailed mode asks for seven", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{{text: validSuggestionJSON}}}
		gen := newTestGenerator(t, caller)

		answers := quizAnswers()
		answers.QuizMode = domain.QuizModeDetailed
		_, err := gen.GenerateSuggestions(context.Background(), answers)
		require.NoError(t, err)

		assert.Contains(t, caller.prompts[0], "Suggest 7 gifts")
	})

	t.Run("retries transient errors then succeeds", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{
			{err: fmt.Errorf("%w: 503", generation.ErrTransientFailure)},
			{text: validSuggestionJSON},
		}}
		gen := newTestGenerator(t, caller)

		suggestions, err := gen.GenerateSuggestions(context.Background(), quizAnswers())

		require.NoError(t, err)
		assert.Len(t, suggestions, 2)
		assert.Equal(t, 2, caller.callCount())
	})

	t.Run("exhausted retries return transient failure", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{
			{err: fmt.Errorf("%w: 503", generation.ErrTransientFailure)},
		}}
		gen := newTestGenerator(t, caller)

		_, err := gen.GenerateSuggestions(context.Background(), quizAnswers())

		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrTransientFailure)
		// MaxRetries 2 means three attempts total.
		assert.Equal(t, 3, caller.callCount())
	})

	t.Run("content blocked is not retried", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{
			{err: fmt.Errorf("%w: finish reason SAFETY", generation.ErrContentBlocked)},
		}}
		gen := newTestGenerator(t, caller)

		_, err := gen.GenerateSuggestions(context.Background(), quizAnswers())

		assert.ErrorIs(t, err, generation.ErrContentBlocked)
		assert.Equal(t, 1, caller.callCount())
	})

	t.Run("empty response is not retried", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{
			{err: fmt.Errorf("%w: no candidates", generation.ErrEmptyResponse)},
		}}
		gen := newTestGenerator(t, caller)

		_, err := gen.GenerateSuggestions(context.Background(), quizAnswers())

		assert.ErrorIs(t, err, generation.ErrEmptyResponse)
		assert.Equal(t, 1, caller.callCount())
	})

	t.Run("unparsable model text returns invalid response", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{{text: "sorry, I cannot help"}}}
		gen := newTestGenerator(t, caller)

		_, err := gen.GenerateSuggestions(context.Background(), quizAnswers())

		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})
}

func TestGenerateCardMessage(t *testing.T) {
	t.Parallel()

	cardReq := domain.CardMessageRequest{
		GiftTitle:       "Chef Knife",
		GiftDescription: "A quality kitchen knife",
		RecipientName:   "Sam",
		Occasion:        "Birthday",
		Relationship:    "Brother",
		SenderName:      "Alex",
	}

	t.Run("returns trimmed message", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{{text: "  Happy birthday, Sam!  \n"}}}
		gen := newTestGenerator(t, caller)

		message, err := gen.GenerateCardMessage(context.Background(), cardReq)

		require.NoError(t, err)
		assert.Equal(t, "Happy birthday, Sam!", message)
	})

	t.Run("substitutes default sender when missing", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{{text: "a message"}}}
		gen := newTestGenerator(t, caller)

		req := cardReq
		req.SenderName = ""
		_, err := gen.GenerateCardMessage(context.Background(), req)
		require.NoError(t, err)

		assert.Contains(t, caller.prompts[0], "from the gift giver")
	})

	t.Run("blank message is an empty response", func(t *testing.T) {
		t.Parallel()

		caller := &stubCaller{responses: []stubResponse{{text: "   "}}}
		gen := newTestGenerator(t, caller)

		_, err := gen.GenerateCardMessage(context.Background(), cardReq)

		assert.ErrorIs(t, err, generation.ErrEmptyResponse)
	})
}

func TestNewGeneratorValidation(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	dir := writeTestTemplates(t)

	tests := []struct {
		name   string
		mutate func(cfg *config.LLMConfig)
	}{
		{"missing API key", func(cfg *config.LLMConfig) { cfg.GeminiAPIKey = "" }},
		{"missing model name", func(cfg *config.LLMConfig) { cfg.ModelName = "" }},
		{"missing template dir", func(cfg *config.LLMConfig) { cfg.PromptTemplateDir = "" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := testLLMConfig(dir)
			tc.mutate(&cfg)

			_, err := NewGenerator(context.Background(), logger, cfg)

			assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		})
	}

	t.Run("missing template files", func(t *testing.T) {
		t.Parallel()

		cfg := testLLMConfig(t.TempDir())

		_, err := newGeneratorWithCaller(logger, cfg, &stubCaller{responses: []stubResponse{{}}})

		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}
