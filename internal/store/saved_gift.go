package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
)

// SavedGiftStore defines the interface for saved gift idea persistence.
// All reads and deletes are scoped to the owning user; a gift ID belonging
// to a different user behaves as if it did not exist.
type SavedGiftStore interface {
	// Create saves a new gift idea.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, gift *domain.SavedGift) error

	// ListByUser returns all gift ideas saved by the user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error)

	// Delete removes a saved gift idea owned by the given user.
	// Returns ErrSavedGiftNotFound if no such gift exists for that user.
	Delete(ctx context.Context, userID, giftID uuid.UUID) error
}
