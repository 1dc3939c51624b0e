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

// RecipientHandler handles saved recipient profile requests.
type RecipientHandler struct {
	recipientService *service.RecipientService
	validator        *validator.Validate
}

// NewRecipientHandler creates a new RecipientHandler.
func NewRecipientHandler(recipientService *service.RecipientService) *RecipientHandler {
	return &RecipientHandler{
		recipientService: recipientService,
		validator:        validator.New(),
	}
}

// CreateProfile handles POST /api/recipients.
func (h *RecipientHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req RecipientProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.recipientService.CreateProfile(r.Context(), userID, recipientInputFromRequest(req))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create recipient profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, recipientToResponse(profile))
}

// ListProfiles handles GET /api/recipients.
func (h *RecipientHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	profiles, err := h.recipientService.ListProfiles(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list recipient profiles", err)
		return
	}

	responses := make([]RecipientProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, recipientToResponse(profile))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// UpdateProfile handles PUT /api/recipients/{id}.
func (h *RecipientHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	profileID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var req RecipientProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.recipientService.UpdateProfile(r.Context(), userID, profileID, recipientInputFromRequest(req))
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Recipient profile not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to update recipient profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recipientToResponse(profile))
}

// DeleteProfile handles DELETE /api/recipients/{id}.
func (h *RecipientHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	profileID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	if err := h.recipientService.DeleteProfile(r.Context(), userID, profileID); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Recipient profile not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete recipient profile", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func recipientInputFromRequest(req RecipientProfileRequest) service.RecipientInput {
	return service.RecipientInput{
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		Interests:    req.Interests,
		Personality:  req.Personality,
		Relationship: req.Relationship,
		Notes:        req.Notes,
	}
}

func recipientToResponse(profile *domain.RecipientProfile) RecipientProfileResponse {
	return RecipientProfileResponse{
		ID:           profile.ID,
		Name:         profile.Name,
		Age:          profile.Age,
		Gender:       profile.Gender,
		Interests:    profile.Interests,
		Personality:  profile.Personality,
		Relationship: profile.Relationship,
		Notes:        profile.Notes,
		CreatedAt:    profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    profile.UpdatedAt.Format(time.RFC3339),
	}
}
