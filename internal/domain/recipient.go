package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for RecipientProfile.
var (
	ErrEmptyRecipientID     = errors.New("recipient profile ID cannot be empty")
	ErrEmptyRecipientUserID = errors.New("recipient profile user ID cannot be empty")
	ErrEmptyProfileName     = errors.New("recipient profile name cannot be empty")
)

// RecipientProfile is a saved description of a gift recipient's traits,
// reusable across future suggestion requests.
type RecipientProfile struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Age          string    `json:"age"`
	Gender       string    `json:"gender"`
	Interests    []string  `json:"interests"`
	Personality  string    `json:"personality"`
	Relationship string    `json:"relationship"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewRecipientProfile creates a new RecipientProfile owned by the given user.
// Returns an error if validation fails.
func NewRecipientProfile(
	userID uuid.UUID,
	name, age, gender string,
	interests []string,
	personality, relationship, notes string,
) (*RecipientProfile, error) {
	profile := &RecipientProfile{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Age:          age,
		Gender:       gender,
		Interests:    interests,
		Personality:  personality,
		Relationship: relationship,
		Notes:        notes,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the RecipientProfile has valid data.
func (p *RecipientProfile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyRecipientID
	}
	if p.UserID == uuid.Nil {
		return ErrEmptyRecipientUserID
	}
	if p.Name == "" {
		return ErrEmptyProfileName
	}
	return nil
}

// Touch updates the profile's UpdatedAt timestamp.
func (p *RecipientProfile) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// QuizAnswers builds a QuizAnswers value from the saved profile traits,
// so a stored recipient can seed a new suggestion request. Budget and
// occasion vary per request and are supplied by the caller.
func (p *RecipientProfile) QuizAnswers(budget, occasion string, mode QuizMode) QuizAnswers {
	return QuizAnswers{
		Age:          p.Age,
		Gender:       p.Gender,
		Interests:    p.Interests,
		Personality:  p.Personality,
		Budget:       budget,
		Occasion:     occasion,
		Relationship: p.Relationship,
		QuizMode:     mode,
	}
}
