package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/store"
)

// MockRecipientStore implements store.RecipientStore for testing
type MockRecipientStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, profile *domain.RecipientProfile) error
	GetByIDFn    func(ctx context.Context, userID, profileID uuid.UUID) (*domain.RecipientProfile, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.RecipientProfile, error)
	UpdateFn     func(ctx context.Context, profile *domain.RecipientProfile) error
	DeleteFn     func(ctx context.Context, userID, profileID uuid.UUID) error

	// Data for default implementation
	Profiles    map[uuid.UUID]*domain.RecipientProfile
	CreateError error
}

// NewMockRecipientStore creates a new mock store with initialized defaults
func NewMockRecipientStore() *MockRecipientStore {
	return &MockRecipientStore{
		Profiles: make(map[uuid.UUID]*domain.RecipientProfile),
	}
}

// Create implements the RecipientStore interface
func (m *MockRecipientStore) Create(ctx context.Context, profile *domain.RecipientProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Profiles[profile.ID] = profile
	return nil
}

// GetByID implements the RecipientStore interface
func (m *MockRecipientStore) GetByID(
	ctx context.Context,
	userID, profileID uuid.UUID,
) (*domain.RecipientProfile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, profileID)
	}

	profile, exists := m.Profiles[profileID]
	if !exists || profile.UserID != userID {
		return nil, store.ErrRecipientNotFound
	}
	return profile, nil
}

// ListByUser implements the RecipientStore interface
func (m *MockRecipientStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.RecipientProfile, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	var profiles []*domain.RecipientProfile
	for _, profile := range m.Profiles {
		if profile.UserID == userID {
			profiles = append(profiles, profile)
		}
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].UpdatedAt.After(profiles[j].UpdatedAt)
	})
	return profiles, nil
}

// Update implements the RecipientStore interface
func (m *MockRecipientStore) Update(ctx context.Context, profile *domain.RecipientProfile) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, profile)
	}

	existing, exists := m.Profiles[profile.ID]
	if !exists || existing.UserID != profile.UserID {
		return store.ErrRecipientNotFound
	}

	m.Profiles[profile.ID] = profile
	return nil
}

// Delete implements the RecipientStore interface
func (m *MockRecipientStore) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, profileID)
	}

	profile, exists := m.Profiles[profileID]
	if !exists || profile.UserID != userID {
		return store.ErrRecipientNotFound
	}

	delete(m.Profiles, profileID)
	return nil
}
