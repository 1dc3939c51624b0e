package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/store"
)

// GiftService manages saved gift ideas for users.
type GiftService struct {
	giftStore store.SavedGiftStore
	logger    *slog.Logger
}

// NewGiftService creates a GiftService with the given store.
func NewGiftService(giftStore store.SavedGiftStore, logger *slog.Logger) *GiftService {
	if giftStore == nil {
		panic("giftStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GiftService{
		giftStore: giftStore,
		logger:    logger.With(slog.String("component", "gift_service")),
	}
}

// SaveGiftIdea stores a gift idea for the user and returns the saved record.
func (s *GiftService) SaveGiftIdea(
	ctx context.Context,
	userID uuid.UUID,
	giftIdea, recipientInfo string,
) (*domain.SavedGift, error) {
	gift, err := domain.NewSavedGift(userID, giftIdea, recipientInfo)
	if err != nil {
		return nil, err
	}

	if err := s.giftStore.Create(ctx, gift); err != nil {
		return nil, fmt.Errorf("failed to save gift idea: %w", err)
	}

	return gift, nil
}

// ListSavedGifts returns the user's saved gift ideas, newest first.
func (s *GiftService) ListSavedGifts(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error) {
	gifts, err := s.giftStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved gifts: %w", err)
	}
	return gifts, nil
}

// DeleteSavedGift removes a saved gift idea. The operation is scoped to the
// requesting user; deleting another user's gift reports not-found.
func (s *GiftService) DeleteSavedGift(ctx context.Context, userID, giftID uuid.UUID) error {
	if err := s.giftStore.Delete(ctx, userID, giftID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "saved gift deleted",
		slog.String("gift_id", giftID.String()),
		slog.String("user_id", userID.String()))
	return nil
}
