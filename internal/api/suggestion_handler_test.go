package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/giftwise-api/internal/api"
	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/generation"
	"github.com/giftwise/giftwise-api/internal/mocks"
	"github.com/giftwise/giftwise-api/internal/service"
)

func fullQuizPayload() map[string]interface{} {
	return map[string]interface{}{
		"age":          "25-34",
		"gender":       "Female",
		"interests":    []string{"Reading", "Hiking"},
		"personality":  "Thoughtful",
		"budget":       "$25-$50",
		"occasion":     "Birthday",
		"relationship": "Friend",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler(w, req)
	return w
}

func TestGenerateSuggestionsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("valid quiz returns model suggestions", func(t *testing.T) {
		t.Parallel()

		generator := mocks.NewMockGeneratorWithSuggestions([]domain.GiftSuggestion{
			{Title: "Book Set", Description: "A boxed set", Reasoning: "They love reading"},
		})
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		w := postJSON(t, handler.GenerateSuggestions, "/api/suggestions", fullQuizPayload())

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Suggestions []domain.GiftSuggestion `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Suggestions, 1)
		assert.Equal(t, "Book Set", resp.Suggestions[0].Title)
	})

	t.Run("missing fields return 400 without invoking the model", func(t *testing.T) {
		t.Parallel()

		requiredFields := []string{
			"age", "gender", "interests", "personality",
			"budget", "occasion", "relationship",
		}

		for _, field := range requiredFields {
			field := field
			t.Run("missing "+field, func(t *testing.T) {
				t.Parallel()

				generator := &mocks.MockGenerator{}
				handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

				payload := fullQuizPayload()
				delete(payload, field)
				w := postJSON(t, handler.GenerateSuggestions, "/api/suggestions", payload)

				assert.Equal(t, http.StatusBadRequest, w.Code)

				var resp struct {
					Error string `json:"error"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Missing required quiz data", resp.Error)

				assert.Equal(t, 0, generator.SuggestionCalls.Count,
					"model must not be invoked for invalid input")
			})
		}
	})

	t.Run("empty interests array returns 400", func(t *testing.T) {
		t.Parallel()

		generator := &mocks.MockGenerator{}
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		payload := fullQuizPayload()
		payload["interests"] = []string{}
		w := postJSON(t, handler.GenerateSuggestions, "/api/suggestions", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, generator.SuggestionCalls.Count)
	})

	t.Run("unknown quiz mode returns 400", func(t *testing.T) {
		t.Parallel()

		generator := &mocks.MockGenerator{}
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		payload := fullQuizPayload()
		payload["quizMode"] = "thorough"
		w := postJSON(t, handler.GenerateSuggestions, "/api/suggestions", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, generator.SuggestionCalls.Count)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()

		generator := &mocks.MockGenerator{}
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		req := httptest.NewRequest(http.MethodPost, "/api/suggestions",
			bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		handler.GenerateSuggestions(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, generator.SuggestionCalls.Count)
	})

	t.Run("model failure still returns 200 with fallback", func(t *testing.T) {
		t.Parallel()

		generator := mocks.MockGeneratorThatFails()
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		w := postJSON(t, handler.GenerateSuggestions, "/api/suggestions", fullQuizPayload())

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Suggestions []domain.GiftSuggestion `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Suggestions, generation.FallbackSuggestionCount)
	})
}

func TestGenerateCardMessageEndpoint(t *testing.T) {
	t.Parallel()

	fullPayload := func() map[string]interface{} {
		return map[string]interface{}{
			"giftTitle":       "Book Set",
			"giftDescription": "A boxed set of novels",
			"recipientName":   "Sam",
			"occasion":        "Birthday",
			"relationship":    "Friend",
			"senderName":      "Alex",
		}
	}

	t.Run("valid request returns the model message", func(t *testing.T) {
		t.Parallel()

		generator := &mocks.MockGenerator{CardMessage: "Happy birthday, Sam!"}
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		w := postJSON(t, handler.GenerateCardMessage, "/api/card-message", fullPayload())

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Happy birthday, Sam!", resp.Message)
	})

	t.Run("sender name is optional", func(t *testing.T) {
		t.Parallel()

		generator := &mocks.MockGenerator{CardMessage: "a message"}
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		payload := fullPayload()
		delete(payload, "senderName")
		w := postJSON(t, handler.GenerateCardMessage, "/api/card-message", payload)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing required field returns 400 without invoking the model", func(t *testing.T) {
		t.Parallel()

		generator := &mocks.MockGenerator{}
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		payload := fullPayload()
		delete(payload, "giftTitle")
		w := postJSON(t, handler.GenerateCardMessage, "/api/card-message", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, generator.CardMessageCalls.Count)
	})

	t.Run("model failure returns 200 with fallback message", func(t *testing.T) {
		t.Parallel()

		generator := mocks.MockGeneratorThatFails()
		handler := api.NewSuggestionHandler(service.NewSuggestionService(generator, nil))

		w := postJSON(t, handler.GenerateCardMessage, "/api/card-message", fullPayload())

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, generation.FallbackCardMessage("Birthday", "Book Set"), resp.Message)
	})
}
