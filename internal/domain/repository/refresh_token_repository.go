package repository

import (
	"context"
	"time"

	"happnings/internal/domain/entity"
	"happnings/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a token by its SHA256 hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// RevokeRefreshToken marks a token as revoked.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID, revokedAt time.Time) error

	// CountActiveForUser counts tokens of a user that are unrevoked and
	// unexpired at now.
	CountActiveForUser(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)

	// RevokeAllForUser revokes every active token of a user (logout everywhere).
	RevokeAllForUser(ctx context.Context, userID uuid.UUID, revokedAt time.Time) error

	// DeleteExpired removes tokens whose expiry is before the cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) error
}
