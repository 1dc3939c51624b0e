package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/giftwise/giftwise-api/internal/config"
	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/generation"
)

// Template file names expected inside config.LLMConfig.PromptTemplateDir.
const (
	suggestionTemplateFile = "gift_suggestions.tmpl"
	cardTemplateFile       = "card_message.tmpl"
)

// defaultSender is substituted into the card prompt when no sender name is given.
const defaultSender = "the gift giver"

// Generator implements generation.Generator using Google's Gemini API.
type Generator struct {
	logger         *slog.Logger
	config         config.LLMConfig
	suggestionTmpl *template.Template
	cardTmpl       *template.Template
	caller         modelCaller
	rng            *rand.Rand
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator with a live Gemini client.
//
// The prompt templates are loaded once from cfg.PromptTemplateDir; a missing
// or unparsable template is a configuration error, not a runtime fallback case.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.PromptTemplateDir == "" {
		return nil, fmt.Errorf("%w: prompt template dir cannot be empty", generation.ErrInvalidConfig)
	}

	caller, err := newGenaiCaller(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	return newGeneratorWithCaller(logger, cfg, caller)
}

// newGeneratorWithCaller wires a Generator around any modelCaller.
// Used directly by tests to inject a double.
func newGeneratorWithCaller(logger *slog.Logger, cfg config.LLMConfig, caller modelCaller) (*Generator, error) {
	suggestionTmpl, err := loadTemplate(cfg.PromptTemplateDir, suggestionTemplateFile)
	if err != nil {
		return nil, err
	}
	cardTmpl, err := loadTemplate(cfg.PromptTemplateDir, cardTemplateFile)
	if err != nil {
		return nil, err
	}

	return &Generator{
		logger:         logger.With(slog.String("component", "gemini_generator")),
		config:         cfg,
		suggestionTmpl: suggestionTmpl,
		cardTmpl:       cardTmpl,
		caller:         caller,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func loadTemplate(dir, name string) (*template.Template, error) {
	tmpl, err := template.ParseFiles(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template %s: %v",
			generation.ErrInvalidConfig, name, err)
	}
	return tmpl, nil
}

// GenerateSuggestions implements generation.Generator.GenerateSuggestions.
func (g *Generator) GenerateSuggestions(
	ctx context.Context,
	answers domain.QuizAnswers,
) ([]domain.GiftSuggestion, error) {
	prompt, err := g.suggestionPrompt(answers)
	if err != nil {
		return nil, err
	}

	text, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := parseSuggestions(text)
	if err != nil {
		g.logger.WarnContext(ctx, "model returned unparsable suggestions",
			slog.String("error", err.Error()),
			slog.Int("response_length", len(text)))
		return nil, err
	}

	g.logger.InfoContext(ctx, "generated gift suggestions",
		slog.Int("requested", answers.SuggestionCount()),
		slog.Int("returned", len(suggestions)))
	return suggestions, nil
}

// GenerateCardMessage implements generation.Generator.GenerateCardMessage.
//
// The expected model output is plain text, so unlike the suggestion path
// there is no JSON-parse failure mode; only transport and empty-response
// failures occur here.
func (g *Generator) GenerateCardMessage(
	ctx context.Context,
	req domain.CardMessageRequest,
) (string, error) {
	prompt, err := g.cardPrompt(req)
	if err != nil {
		return "", err
	}

	text, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return "", err
	}

	message := strings.TrimSpace(text)
	if message == "" {
		return "", fmt.Errorf("%w: blank card message", generation.ErrEmptyResponse)
	}

	g.logger.InfoContext(ctx, "generated card message",
		slog.Int("message_length", len(message)))
	return message, nil
}

func (g *Generator) suggestionPrompt(answers domain.QuizAnswers) (string, error) {
	data := suggestionPromptData{
		Count:        answers.SuggestionCount(),
		Age:          answers.Age,
		Gender:       answers.Gender,
		Interests:    strings.Join(answers.Interests, ", "),
		Personality:  answers.Personality,
		Budget:       answers.Budget,
		Occasion:     answers.Occasion,
		Relationship: answers.Relationship,
	}

	var buf bytes.Buffer
	if err := g.suggestionTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute suggestion prompt template: %w", err)
	}
	return buf.String(), nil
}

func (g *Generator) cardPrompt(req domain.CardMessageRequest) (string, error) {
	sender := req.SenderName
	if sender == "" {
		sender = defaultSender
	}

	data := cardPromptData{
		GiftTitle:       req.GiftTitle,
		GiftDescription: req.GiftDescription,
		RecipientName:   req.RecipientName,
		Occasion:        req.Occasion,
		Relationship:    req.Relationship,
		Sender:          sender,
	}

	var buf bytes.Buffer
	if err := g.cardTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute card prompt template: %w", err)
	}
	return buf.String(), nil
}

// callWithRetry calls the model with exponential backoff and jitter for
// transient failures. Permanent errors (safety blocks, empty responses) are
// returned immediately. Each attempt is bounded by the configured request
// timeout.
func (g *Generator) callWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}
	timeout := time.Duration(g.config.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		text, err := g.caller.generateText(callCtx, g.config.ModelName, prompt)
		cancel()

		if err == nil {
			return text, nil
		}
		lastErr = err

		if isPermanent(err) {
			g.logger.WarnContext(ctx, "permanent model error, not retrying",
				slog.String("error", err.Error()),
				slog.Int("attempt", attempt+1))
			return "", err
		}

		if attempt >= maxRetries {
			break
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoff := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitter := 0.5 + g.rng.Float64()*0.5
		delay := time.Duration(backoff * jitter * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying model call after transient error",
			slog.String("error", err.Error()),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: exceeded %d attempts: %v",
		generation.ErrTransientFailure, maxRetries+1, lastErr)
}

// isPermanent reports whether retrying the call cannot help.
func isPermanent(err error) bool {
	return errors.Is(err, generation.ErrContentBlocked) ||
		errors.Is(err, generation.ErrEmptyResponse) ||
		errors.Is(err, generation.ErrInvalidResponse)
}
