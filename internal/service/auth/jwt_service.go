// Package auth provides JWT token issuance/validation and password hashing
// for the API's authentication layer.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed, has a bad
	// signature, or carries invalid claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before time is in
	// the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")

	// ErrWrongTokenType is returned when an access token is presented where
	// a refresh token is expected, or vice versa.
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims holds the validated claims extracted from a JWT.
type Claims struct {
	UserID    uuid.UUID
	TokenType string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService defines the interface for generating and validating JWTs.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates an access token and returns its claims.
	// Returns ErrExpiredToken, ErrInvalidToken, ErrTokenNotYetValid, or
	// ErrWrongTokenType as appropriate.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed refresh token for the user.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)

	// AccessTokenLifetime returns the configured access token lifetime,
	// used by handlers to report expiry timestamps to clients.
	AccessTokenLifetime() time.Duration
}
