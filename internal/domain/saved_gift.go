package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for SavedGift.
var (
	ErrEmptySavedGiftID     = errors.New("saved gift ID cannot be empty")
	ErrEmptySavedGiftUserID = errors.New("saved gift user ID cannot be empty")
	ErrEmptyGiftIdea        = errors.New("gift idea cannot be empty")
)

// SavedGift is a gift idea a user has chosen to keep. The idea itself is
// stored as opaque free text; RecipientInfo is an optional short description
// of who the gift is for.
type SavedGift struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	GiftIdea      string    `json:"gift_idea"`
	RecipientInfo string    `json:"recipient_info,omitempty"`
	SavedAt       time.Time `json:"saved_at"`
}

// NewSavedGift creates a new SavedGift owned by the given user.
// Returns an error if validation fails.
func NewSavedGift(userID uuid.UUID, giftIdea, recipientInfo string) (*SavedGift, error) {
	gift := &SavedGift{
		ID:            uuid.New(),
		UserID:        userID,
		GiftIdea:      giftIdea,
		RecipientInfo: recipientInfo,
		SavedAt:       time.Now().UTC(),
	}

	if err := gift.Validate(); err != nil {
		return nil, err
	}

	return gift, nil
}

// Validate checks if the SavedGift has valid data.
func (g *SavedGift) Validate() error {
	if g.ID == uuid.Nil {
		return ErrEmptySavedGiftID
	}
	if g.UserID == uuid.Nil {
		return ErrEmptySavedGiftUserID
	}
	if g.GiftIdea == "" {
		return ErrEmptyGiftIdea
	}
	return nil
}
