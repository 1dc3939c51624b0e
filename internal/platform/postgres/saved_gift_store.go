package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/platform/logger"
	"github.com/giftwise/giftwise-api/internal/store"
)

// SavedGiftStore implements store.SavedGiftStore using PostgreSQL.
type SavedGiftStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSavedGiftStore creates a PostgreSQL implementation of store.SavedGiftStore.
func NewSavedGiftStore(db store.DBTX, log *slog.Logger) *SavedGiftStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &SavedGiftStore{
		db:     db,
		logger: log.With(slog.String("component", "saved_gift_store")),
	}
}

var _ store.SavedGiftStore = (*SavedGiftStore)(nil)

// Create implements store.SavedGiftStore.Create.
func (s *SavedGiftStore) Create(ctx context.Context, gift *domain.SavedGift) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := gift.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO saved_gifts (id, user_id, gift_idea, recipient_info, saved_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		gift.ID, gift.UserID, gift.GiftIdea, gift.RecipientInfo, gift.SavedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("saved gift references missing user",
				slog.String("user_id", gift.UserID.String()))
		} else {
			log.Error("failed to save gift idea",
				slog.String("error", err.Error()),
				slog.String("gift_id", gift.ID.String()))
		}
		return MapError(err)
	}

	log.Info("gift idea saved",
		slog.String("gift_id", gift.ID.String()),
		slog.String("user_id", gift.UserID.String()))
	return nil
}

// ListByUser implements store.SavedGiftStore.ListByUser.
// Results are ordered newest first.
func (s *SavedGiftStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error) {
	query := `
		SELECT id, user_id, gift_idea, recipient_info, saved_at
		FROM saved_gifts
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	gifts := make([]*domain.SavedGift, 0)
	for rows.Next() {
		var gift domain.SavedGift
		if err := rows.Scan(&gift.ID, &gift.UserID, &gift.GiftIdea,
			&gift.RecipientInfo, &gift.SavedAt); err != nil {
			return nil, MapError(err)
		}
		gifts = append(gifts, &gift)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return gifts, nil
}

// Delete implements store.SavedGiftStore.Delete.
// The delete is scoped to the owning user so one user cannot remove
// another user's saved gifts.
func (s *SavedGiftStore) Delete(ctx context.Context, userID, giftID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_gifts WHERE id = $1 AND user_id = $2`, giftID, userID)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrSavedGiftNotFound)
}
