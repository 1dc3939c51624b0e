package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/giftwise/giftwise-api/internal/generation"
)

// modelCaller abstracts the raw text-generation call so tests can substitute
// a double without touching the network.
type modelCaller interface {
	// generateText sends a prompt to the named model and returns the
	// trimmed response text. Errors are already classified against the
	// generation package sentinels where possible.
	generateText(ctx context.Context, model, prompt string) (string, error)
}

// genaiCaller is the production modelCaller backed by the Gemini API client.
type genaiCaller struct {
	client *genai.Client
}

var _ modelCaller = (*genaiCaller)(nil)

// newGenaiCaller creates a Gemini API client from the given API key.
func newGenaiCaller(ctx context.Context, apiKey string) (*genaiCaller, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}
	return &genaiCaller{client: client}, nil
}

// generateText implements modelCaller using the Gemini API.
func (c *genaiCaller) generateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		// Transport, quota, and server faults all surface here; the caller
		// treats them as transient.
		return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrEmptyResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason SAFETY", generation.ErrContentBlocked)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no text in response", generation.ErrEmptyResponse)
	}

	return text, nil
}
