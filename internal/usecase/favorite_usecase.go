package usecase

import (
	"context"

	"happnings/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteInput is the event snapshot stored when a user favorites an event.
type FavoriteInput struct {
	EventID   string
	Title     string
	EventDate string
	Price     string
	VenueName string
	Address   string
	ImageURL  string
	URL       string
}

// FavoriteUsecase defines the interface for favorite management use cases
type FavoriteUsecase interface {
	// AddFavorite stores an event in the user's favorites.
	AddFavorite(ctx context.Context, userID uuid.UUID, input *FavoriteInput) (*entity.Favorite, error)

	// ListFavorites returns the user's favorites, newest first.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// RemoveFavorite deletes the favorite for the given event.
	RemoveFavorite(ctx context.Context, userID uuid.UUID, eventID string) error
}
