package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/store"
)

// MockSavedGiftStore implements store.SavedGiftStore for testing
type MockSavedGiftStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, gift *domain.SavedGift) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error)
	DeleteFn     func(ctx context.Context, userID, giftID uuid.UUID) error

	// Data for default implementation
	Gifts       map[uuid.UUID]*domain.SavedGift
	CreateError error
	ListError   error
}

// NewMockSavedGiftStore creates a new mock store with initialized defaults
func NewMockSavedGiftStore() *MockSavedGiftStore {
	return &MockSavedGiftStore{
		Gifts: make(map[uuid.UUID]*domain.SavedGift),
	}
}

// Create implements the SavedGiftStore interface
func (m *MockSavedGiftStore) Create(ctx context.Context, gift *domain.SavedGift) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, gift)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Gifts[gift.ID] = gift
	return nil
}

// ListByUser implements the SavedGiftStore interface
func (m *MockSavedGiftStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.SavedGift, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	var gifts []*domain.SavedGift
	for _, gift := range m.Gifts {
		if gift.UserID == userID {
			gifts = append(gifts, gift)
		}
	}
	sort.Slice(gifts, func(i, j int) bool {
		return gifts[i].SavedAt.After(gifts[j].SavedAt)
	})
	return gifts, nil
}

// Delete implements the SavedGiftStore interface
func (m *MockSavedGiftStore) Delete(ctx context.Context, userID, giftID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, giftID)
	}

	gift, exists := m.Gifts[giftID]
	if !exists || gift.UserID != userID {
		return store.ErrSavedGiftNotFound
	}

	delete(m.Gifts, giftID)
	return nil
}
