// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"happnings/internal/domain/entity"
	"happnings/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (user, event) pair already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new favorite with its event snapshot.
	// Returns ErrDuplicateFavorite when the (user, event) pair already exists.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// FindFavoriteByID retrieves a favorite by its unique ID.
	FindFavoriteByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error)

	// FindFavoriteByUserAndEvent retrieves a favorite by user and event IDs.
	FindFavoriteByUserAndEvent(ctx context.Context, userID uuid.UUID, eventID string) (*entity.Favorite, error)

	// FindFavoritesByUser retrieves all favorites for a user, newest first.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// DeleteFavorite removes a favorite by its ID.
	// Returns ErrFavoriteNotFound when no row was deleted.
	DeleteFavorite(ctx context.Context, id uuid.UUID) error
}
