package impl

import (
	"context"
	"fmt"
	"time"

	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	"happnings/internal/errors"
	"happnings/internal/usecase"

	"github.com/google/uuid"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(favoriteRepo repository.FavoriteRepository) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
	}
}

// AddFavorite stores an event snapshot in the user's favorites. Adding the
// same event twice is a client error.
func (s *favoriteService) AddFavorite(ctx context.Context, userID uuid.UUID, input *usecase.FavoriteInput) (*entity.Favorite, error) {
	favorite := &entity.Favorite{
		UserID:    userID,
		EventID:   input.EventID,
		Title:     input.Title,
		EventDate: input.EventDate,
		Price:     input.Price,
		VenueName: input.VenueName,
		Address:   input.Address,
		ImageURL:  input.ImageURL,
		URL:       input.URL,
		CreatedAt: time.Now(),
	}

	if err := s.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, domainerrors.ErrFavoriteExists
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	return favorite, nil
}

// ListFavorites returns the user's favorites, newest first.
func (s *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := s.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return favorites, nil
}

// RemoveFavorite deletes the favorite for the given event.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID uuid.UUID, eventID string) error {
	favorite, err := s.favoriteRepo.FindFavoriteByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return fmt.Errorf("failed to find favorite: %w", err)
	}

	if err := s.favoriteRepo.DeleteFavorite(ctx, favorite.ID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
