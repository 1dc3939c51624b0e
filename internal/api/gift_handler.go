package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/api/middleware"
	"github.com/giftwise/giftwise-api/internal/api/shared"
	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/service"
	"github.com/giftwise/giftwise-api/internal/store"
)

// GiftHandler handles saved gift idea requests.
type GiftHandler struct {
	giftService *service.GiftService
	validator   *validator.Validate
}

// NewGiftHandler creates a new GiftHandler.
func NewGiftHandler(giftService *service.GiftService) *GiftHandler {
	return &GiftHandler{
		giftService: giftService,
		validator:   validator.New(),
	}
}

// SaveGift handles POST /api/gifts.
func (h *GiftHandler) SaveGift(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SaveGiftRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	gift, err := h.giftService.SaveGiftIdea(r.Context(), userID, req.GiftIdea, req.RecipientInfo)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to save gift idea", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, giftToResponse(gift))
}

// ListGifts handles GET /api/gifts.
func (h *GiftHandler) ListGifts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	gifts, err := h.giftService.ListSavedGifts(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list saved gifts", err)
		return
	}

	responses := make([]SavedGiftResponse, 0, len(gifts))
	for _, gift := range gifts {
		responses = append(responses, giftToResponse(gift))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// DeleteGift handles DELETE /api/gifts/{id}.
func (h *GiftHandler) DeleteGift(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	giftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid gift ID")
		return
	}

	if err := h.giftService.DeleteSavedGift(r.Context(), userID, giftID); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Saved gift not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete saved gift", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func giftToResponse(gift *domain.SavedGift) SavedGiftResponse {
	return SavedGiftResponse{
		ID:            gift.ID,
		GiftIdea:      gift.GiftIdea,
		RecipientInfo: gift.RecipientInfo,
		SavedAt:       gift.SavedAt.Format(time.RFC3339),
	}
}
