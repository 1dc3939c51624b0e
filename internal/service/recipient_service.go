package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/domain"
	"github.com/giftwise/giftwise-api/internal/store"
)

// RecipientInput carries the editable fields of a recipient profile.
type RecipientInput struct {
	Name         string
	Age          string
	Gender       string
	Interests    []string
	Personality  string
	Relationship string
	Notes        string
}

// RecipientService manages saved recipient profiles for users.
type RecipientService struct {
	recipientStore store.RecipientStore
	logger         *slog.Logger
}

// NewRecipientService creates a RecipientService with the given store.
func NewRecipientService(recipientStore store.RecipientStore, logger *slog.Logger) *RecipientService {
	if recipientStore == nil {
		panic("recipientStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipientService{
		recipientStore: recipientStore,
		logger:         logger.With(slog.String("component", "recipient_service")),
	}
}

// CreateProfile stores a new recipient profile for the user.
func (s *RecipientService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	input RecipientInput,
) (*domain.RecipientProfile, error) {
	profile, err := domain.NewRecipientProfile(
		userID, input.Name, input.Age, input.Gender,
		input.Interests, input.Personality, input.Relationship, input.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.recipientStore.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create recipient profile: %w", err)
	}

	return profile, nil
}

// ListProfiles returns the user's recipient profiles, most recently updated first.
func (s *RecipientService) ListProfiles(ctx context.Context, userID uuid.UUID) ([]*domain.RecipientProfile, error) {
	profiles, err := s.recipientStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipient profiles: %w", err)
	}
	return profiles, nil
}

// UpdateProfile applies the given input to an existing profile owned by the
// user and refreshes its updated_at timestamp.
func (s *RecipientService) UpdateProfile(
	ctx context.Context,
	userID, profileID uuid.UUID,
	input RecipientInput,
) (*domain.RecipientProfile, error) {
	profile, err := s.recipientStore.GetByID(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.Interests = input.Interests
	profile.Personality = input.Personality
	profile.Relationship = input.Relationship
	profile.Notes = input.Notes
	profile.Touch()

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipientStore.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update recipient profile: %w", err)
	}

	return profile, nil
}

// DeleteProfile removes a recipient profile. The operation is scoped to the
// requesting user; deleting another user's profile reports not-found.
func (s *RecipientService) DeleteProfile(ctx context.Context, userID, profileID uuid.UUID) error {
	if err := s.recipientStore.Delete(ctx, userID, profileID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "recipient profile deleted",
		slog.String("profile_id", profileID.String()),
		slog.String("user_id", userID.String()))
	return nil
}
