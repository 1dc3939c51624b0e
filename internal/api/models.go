package api

import (
	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	DisplayName string `json:"display_name" validate:"max=100"`
	Password    string `json:"password"     validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserProfileResponse defines the response for the profile endpoints.
type UserProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// UpdateProfileRequest defines the payload for updating the caller's profile.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
}

// QuizAnswersRequest defines the payload for the gift suggestion endpoint.
// All fields except quizMode are required; requests missing any of them are
// rejected before the pipeline is invoked.
type QuizAnswersRequest struct {
	Age          string   `json:"age"          validate:"required"`
	Gender       string   `json:"gender"       validate:"required"`
	Interests    []string `json:"interests"    validate:"required,min=1"`
	Personality  string   `json:"personality"  validate:"required"`
	Budget       string   `json:"budget"       validate:"required"`
	Occasion     string   `json:"occasion"     validate:"required"`
	Relationship string   `json:"relationship" validate:"required"`
	QuizMode     string   `json:"quizMode"     validate:"omitempty,oneof=quick detailed"`
}

// ToDomain converts the request to domain quiz answers.
func (r *QuizAnswersRequest) ToDomain() domain.QuizAnswers {
	return domain.QuizAnswers{
		Age:          r.Age,
		Gender:       r.Gender,
		Interests:    r.Interests,
		Personality:  r.Personality,
		Budget:       r.Budget,
		Occasion:     r.Occasion,
		Relationship: r.Relationship,
		QuizMode:     domain.QuizMode(r.QuizMode),
	}
}

// SuggestionsResponse defines the response for the gift suggestion endpoint.
type SuggestionsResponse struct {
	Suggestions []domain.GiftSuggestion `json:"suggestions"`
}

// CardMessageRequest defines the payload for the card message endpoint.
type CardMessageRequest struct {
	GiftTitle       string `json:"giftTitle"       validate:"required"`
	GiftDescription string `json:"giftDescription" validate:"required"`
	RecipientName   string `json:"recipientName"   validate:"required"`
	Occasion        string `json:"occasion"        validate:"required"`
	Relationship    string `json:"relationship"    validate:"required"`
	SenderName      string `json:"senderName"`
}

// ToDomain converts the request to a domain card message request.
func (r *CardMessageRequest) ToDomain() domain.CardMessageRequest {
	return domain.CardMessageRequest{
		GiftTitle:       r.GiftTitle,
		GiftDescription: r.GiftDescription,
		RecipientName:   r.RecipientName,
		Occasion:        r.Occasion,
		Relationship:    r.Relationship,
		SenderName:      r.SenderName,
	}
}

// CardMessageResponse defines the response for the card message endpoint.
type CardMessageResponse struct {
	Message string `json:"message"`
}

// SaveGiftRequest defines the payload for saving a gift idea.
type SaveGiftRequest struct {
	GiftIdea      string `json:"gift_idea"      validate:"required,min=1"`
	RecipientInfo string `json:"recipient_info"`
}

// SavedGiftResponse defines the response shape for a saved gift idea.
type SavedGiftResponse struct {
	ID            uuid.UUID `json:"id"`
	GiftIdea      string    `json:"gift_idea"`
	RecipientInfo string    `json:"recipient_info,omitempty"`
	SavedAt       string    `json:"saved_at"`
}

// RecipientProfileRequest defines the payload for creating or updating a
// recipient profile.
type RecipientProfileRequest struct {
	Name         string   `json:"name"         validate:"required,min=1,max=100"`
	Age          string   `json:"age"`
	Gender       string   `json:"gender"`
	Interests    []string `json:"interests"`
	Personality  string   `json:"personality"`
	Relationship string   `json:"relationship"`
	Notes        string   `json:"notes"`
}

// RecipientProfileResponse defines the response shape for a recipient profile.
type RecipientProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Age          string    `json:"age"`
	Gender       string    `json:"gender"`
	Interests    []string  `json:"interests"`
	Personality  string    `json:"personality"`
	Relationship string    `json:"relationship"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}
