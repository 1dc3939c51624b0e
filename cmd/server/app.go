package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/giftwise/giftwise-api/internal/config"
	"github.com/giftwise/giftwise-api/internal/generation"
	"github.com/giftwise/giftwise-api/internal/platform/gemini"
	"github.com/giftwise/giftwise-api/internal/platform/postgres"
	"github.com/giftwise/giftwise-api/internal/service"
	"github.com/giftwise/giftwise-api/internal/service/auth"
	"github.com/giftwise/giftwise-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore      store.UserStore
	savedGiftStore store.SavedGiftStore
	recipientStore store.RecipientStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	generator        generation.Generator

	suggestionService *service.SuggestionService
	giftService       *service.GiftService
	recipientService  *service.RecipientService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	bcryptVerifier := auth.NewBcryptVerifier()
	app.passwordHasher = bcryptVerifier
	app.passwordVerifier = bcryptVerifier

	app.userStore = postgres.NewUserStore(db, logger)
	app.savedGiftStore = postgres.NewSavedGiftStore(db, logger)
	app.recipientStore = postgres.NewRecipientStore(db, logger)

	app.generator, err = gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully",
		"model", cfg.LLM.ModelName)

	app.suggestionService = service.NewSuggestionService(app.generator, logger)
	app.giftService = service.NewGiftService(app.savedGiftStore, logger)
	app.recipientService = service.NewRecipientService(app.recipientStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
