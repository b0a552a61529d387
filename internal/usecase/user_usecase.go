package usecase

import (
	"context"

	"happnings/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase defines the interface for account and session use cases
type UserUsecase interface {
	// Register creates a new account and issues an initial token pair.
	Register(ctx context.Context, email, password, name string) (*entity.User, *TokenPair, error)

	// Login verifies credentials and issues a token pair. Sessions beyond
	// the configured limit revoke the user's older sessions.
	Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error)

	// RefreshTokens rotates a refresh token into a new pair. The presented
	// token is revoked whether or not rotation succeeds.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile retrieves the account for the given user ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile changes the user's display name.
	UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error)

	// DeleteAccount removes the account and everything hanging off it.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
