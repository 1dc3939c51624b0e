package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/giftwise/giftwise-api/internal/api/shared"
	"github.com/giftwise/giftwise-api/internal/service"
)

// SuggestionHandler handles gift suggestion and card message requests.
type SuggestionHandler struct {
	suggestionService *service.SuggestionService
	validator         *validator.Validate
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(suggestionService *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		validator:         validator.New(),
	}
}

// GenerateSuggestions handles POST /api/suggestions.
//
// Requests missing any required quiz field are rejected with 400 before the
// pipeline (and therefore the model client) is ever invoked. A valid request
// always yields 200 with a non-empty suggestion list: model failures are
// absorbed by the service's fallback path.
func (h *SuggestionHandler) GenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	var req QuizAnswersRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required quiz data")
		return
	}

	answers := req.ToDomain()
	if err := answers.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required quiz data")
		return
	}

	suggestions := h.suggestionService.GenerateGiftSuggestions(r.Context(), answers)

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// GenerateCardMessage handles POST /api/card-message.
func (h *SuggestionHandler) GenerateCardMessage(w http.ResponseWriter, r *http.Request) {
	var req CardMessageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required fields")
		return
	}

	message := h.suggestionService.GenerateGiftCardMessage(r.Context(), req.ToDomain())

	shared.RespondWithJSON(w, r, http.StatusOK, CardMessageResponse{Message: message})
}
