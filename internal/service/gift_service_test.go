package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/mocks"
	"github.com/giftwise/giftwise-api/internal/service"
	"github.com/giftwise/giftwise-api/internal/store"
)

func TestSaveGiftIdea(t *testing.T) {
	t.Parallel()

	t.Run("saves a valid gift idea", func(t *testing.T) {
		t.Parallel()

		giftStore := mocks.NewMockSavedGiftStore()
		svc := service.NewGiftService(giftStore, nil)
		userID := uuid.New()

		gift, err := svc.SaveGiftIdea(context.Background(), userID, "Cooking Class", "My sister")

		require.NoError(t, err)
		assert.Equal(t, userID, gift.UserID)
		assert.Equal(t, "Cooking Class", gift.GiftIdea)
		assert.Equal(t, "My sister", gift.RecipientInfo)
		assert.Contains(t, giftStore.Gifts, gift.ID)
	})

	t.Run("rejects an empty gift idea", func(t *testing.T) {
		t.Parallel()

		giftStore := mocks.NewMockSavedGiftStore()
		svc := service.NewGiftService(giftStore, nil)

		_, err := svc.SaveGiftIdea(context.Background(), uuid.New(), "", "")

		assert.ErrorIs(t, err, domain.ErrEmptyGiftIdea)
		assert.Empty(t, giftStore.Gifts)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		t.Parallel()

		giftStore := mocks.NewMockSavedGiftStore()
		giftStore.CreateError = store.ErrInvalidEntity
		svc := service.NewGiftService(giftStore, nil)

		_, err := svc.SaveGiftIdea(context.Background(), uuid.New(), "Cooking Class", "")

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestListSavedGifts(t *testing.T) {
	t.Parallel()

	t.Run("returns only the user's gifts", func(t *testing.T) {
		t.Parallel()

		giftStore := mocks.NewMockSavedGiftStore()
		svc := service.NewGiftService(giftStore, nil)
		userID := uuid.New()
		otherID := uuid.New()

		_, err := svc.SaveGiftIdea(context.Background(), userID, "Mine", "")
		require.NoError(t, err)
		_, err = svc.SaveGiftIdea(context.Background(), otherID, "Theirs", "")
		require.NoError(t, err)

		gifts, err := svc.ListSavedGifts(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, gifts, 1)
		assert.Equal(t, "Mine", gifts[0].GiftIdea)
	})

	t.Run("empty list for a new user", func(t *testing.T) {
		t.Parallel()

		svc := service.NewGiftService(mocks.NewMockSavedGiftStore(), nil)

		gifts, err := svc.ListSavedGifts(context.Background(), uuid.New())

		require.NoError(t, err)
		assert.Empty(t, gifts)
	})
}

func TestDeleteSavedGift(t *testing.T) {
	t.Parallel()

	t.Run("deletes an owned gift", func(t *testing.T) {
		t.Parallel()

		giftStore := mocks.NewMockSavedGiftStore()
		svc := service.NewGiftService(giftStore, nil)
		userID := uuid.New()

		gift, err := svc.SaveGiftIdea(context.Background(), userID, "Cooking Class", "")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteSavedGift(context.Background(), userID, gift.ID))
		assert.Empty(t, giftStore.Gifts)
	})

	t.Run("another user's gift reports not found", func(t *testing.T) {
		t.Parallel()

		giftStore := mocks.NewMockSavedGiftStore()
		svc := service.NewGiftService(giftStore, nil)

		gift, err := svc.SaveGiftIdea(context.Background(), uuid.New(), "Cooking Class", "")
		require.NoError(t, err)

		err = svc.DeleteSavedGift(context.Background(), uuid.New(), gift.ID)

		assert.ErrorIs(t, err, store.ErrSavedGiftNotFound)
		assert.Len(t, giftStore.Gifts, 1)
	})

	t.Run("unknown gift reports not found", func(t *testing.T) {
		t.Parallel()

		svc := service.NewGiftService(mocks.NewMockSavedGiftStore(), nil)

		err := svc.DeleteSavedGift(context.Background(), uuid.New(), uuid.New())

		assert.ErrorIs(t, err, store.ErrSavedGiftNotFound)
	})
}
