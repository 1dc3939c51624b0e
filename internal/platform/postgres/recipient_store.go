package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/platform/logger"
	"github.com/giftwise/giftwise-api/internal/store"
)

// RecipientStore implements store.RecipientStore using PostgreSQL.
// The interests list is stored as a JSONB column.
type RecipientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRecipientStore creates a PostgreSQL implementation of store.RecipientStore.
func NewRecipientStore(db store.DBTX, log *slog.Logger) *RecipientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &RecipientStore{
		db:     db,
		logger: log.With(slog.String("component", "recipient_store")),
	}
}

var _ store.RecipientStore = (*RecipientStore)(nil)

// Create implements store.RecipientStore.Create.
func (s *RecipientStore) Create(ctx context.Context, profile *domain.RecipientProfile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		return err
	}

	interests, err := marshalInterests(profile.Interests)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recipient_profiles
			(id, user_id, name, age, gender, interests, personality, relationship, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(ctx, query,
		profile.ID, profile.UserID, profile.Name, profile.Age, profile.Gender,
		interests, profile.Personality, profile.Relationship, profile.Notes,
		profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		log.Error("failed to create recipient profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return MapError(err)
	}

	log.Info("recipient profile created",
		slog.String("profile_id", profile.ID.String()),
		slog.String("user_id", profile.UserID.String()))
	return nil
}

// GetByID implements store.RecipientStore.GetByID.
func (s *RecipientStore) GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.RecipientProfile, error) {
	query := selectRecipientColumns + `
		WHERE id = $1 AND user_id = $2
	`
	row := s.db.QueryRowContext(ctx, query, profileID, userID)
	profile, err := scanRecipient(row)
	if err != nil {
		if mapped := MapError(err); store.IsNotFoundError(mapped) {
			return nil, store.ErrRecipientNotFound
		}
		return nil, MapError(err)
	}
	return profile, nil
}

// ListByUser implements store.RecipientStore.ListByUser.
// Results are ordered most recently updated first.
func (s *RecipientStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.RecipientProfile, error) {
	query := selectRecipientColumns + `
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	profiles := make([]*domain.RecipientProfile, 0)
	for rows.Next() {
		profile, err := scanRecipient(rows)
		if err != nil {
			return nil, MapError(err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return profiles, nil
}

// Update implements store.RecipientStore.Update.
// The update is scoped to the owning user.
func (s *RecipientStore) Update(ctx context.Context, profile *domain.RecipientProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	interests, err := marshalInterests(profile.Interests)
	if err != nil {
		return err
	}

	query := `
		UPDATE recipient_profiles
		SET name = $3, age = $4, gender = $5, interests = $6,
			personality = $7, relationship = $8, notes = $9, updated_at = $10
		WHERE id = $1 AND user_id = $2
	`
	result, err := s.db.ExecContext(ctx, query,
		profile.ID, profile.UserID, profile.Name, profile.Age, profile.Gender,
		interests, profile.Personality, profile.Relationship, profile.Notes,
		profile.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrRecipientNotFound)
}

// Delete implements store.RecipientStore.Delete.
// The delete is scoped to the owning user.
func (s *RecipientStore) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM recipient_profiles WHERE id = $1 AND user_id = $2`, profileID, userID)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrRecipientNotFound)
}

const selectRecipientColumns = `
		SELECT id, user_id, name, age, gender, interests, personality, relationship, notes, created_at, updated_at
		FROM recipient_profiles
`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipient(row rowScanner) (*domain.RecipientProfile, error) {
	var profile domain.RecipientProfile
	var interests []byte
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Name, &profile.Age, &profile.Gender,
		&interests, &profile.Personality, &profile.Relationship, &profile.Notes,
		&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(interests) > 0 {
		if err := json.Unmarshal(interests, &profile.Interests); err != nil {
			return nil, fmt.Errorf("failed to decode interests: %w", err)
		}
	}

	return &profile, nil
}

func marshalInterests(interests []string) ([]byte, error) {
	if interests == nil {
		interests = []string{}
	}
	data, err := json.Marshal(interests)
	if err != nil {
		return nil, fmt.Errorf("failed to encode interests: %w", err)
	}
	return data, nil
}
