package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/giftwise/giftwise-api/internal/api"
	apiMiddleware "github.com/giftwise/giftwise-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	suggestionHandler := api.NewSuggestionHandler(app.suggestionService)
	giftHandler := api.NewGiftHandler(app.giftService)
	recipientHandler := api.NewRecipientHandler(app.recipientService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Suggestion endpoints (public; no account needed to take the quiz)
		r.Post("/suggestions", suggestionHandler.GenerateSuggestions)
		r.Post("/card-message", suggestionHandler.GenerateCardMessage)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User profile endpoints
			r.Get("/users/me", authHandler.GetProfile)
			r.Put("/users/me", authHandler.UpdateProfile)

			// Saved gift idea endpoints
			r.Post("/gifts", giftHandler.SaveGift)
			r.Get("/gifts", giftHandler.ListGifts)
			r.Delete("/gifts/{id}", giftHandler.DeleteGift)

			// Recipient profile endpoints
			r.Post("/recipients", recipientHandler.CreateProfile)
			r.Get("/recipients", recipientHandler.ListProfiles)
			r.Put("/recipients/{id}", recipientHandler.UpdateProfile)
			r.Delete("/recipients/{id}", recipientHandler.DeleteProfile)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
