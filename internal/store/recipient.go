package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
)

// RecipientStore defines the interface for recipient profile persistence.
// All reads, updates, and deletes are scoped to the owning user; a profile ID
// belonging to a different user behaves as if it did not exist.
type RecipientStore interface {
	// Create saves a new recipient profile.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, profile *domain.RecipientProfile) error

	// GetByID retrieves a profile owned by the given user.
	// Returns ErrRecipientNotFound if no such profile exists for that user.
	GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.RecipientProfile, error)

	// ListByUser returns all recipient profiles for the user, most recently
	// updated first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.RecipientProfile, error)

	// Update modifies an existing profile owned by the given user.
	// Returns ErrRecipientNotFound if no such profile exists for that user.
	Update(ctx context.Context, profile *domain.RecipientProfile) error

	// Delete removes a profile owned by the given user.
	// Returns ErrRecipientNotFound if no such profile exists for that user.
	Delete(ctx context.Context, userID, profileID uuid.UUID) error
}
