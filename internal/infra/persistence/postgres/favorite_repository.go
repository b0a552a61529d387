package postgres

import (
	"context"

	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	"happnings/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

func fromFavoriteDomain(favorite *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		EventID:   favorite.EventID,
		Title:     favorite.Title,
		EventDate: favorite.EventDate,
		Price:     favorite.Price,
		VenueName: favorite.VenueName,
		Address:   favorite.Address,
		ImageURL:  favorite.ImageURL,
		URL:       favorite.URL,
		CreatedAt: favorite.CreatedAt,
	}
}

func toFavoriteDomain(m *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		EventID:   m.EventID,
		Title:     m.Title,
		EventDate: m.EventDate,
		Price:     m.Price,
		VenueName: m.VenueName,
		Address:   m.Address,
		ImageURL:  m.ImageURL,
		URL:       m.URL,
		CreatedAt: m.CreatedAt,
	}
}

// CreateFavorite persists a new favorite with its event snapshot. The unique
// index on (user_id, event_id) turns a re-add into ErrDuplicateFavorite.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	// Update the entity with generated values
	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// FindFavoriteByID retrieves a favorite by its unique ID.
func (repo *favoriteRepository) FindFavoriteByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by id")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindFavoriteByUserAndEvent retrieves a favorite by user and event IDs.
func (repo *favoriteRepository) FindFavoriteByUserAndEvent(ctx context.Context, userID uuid.UUID, eventID string) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by user and event")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindFavoritesByUser retrieves all favorites for a user, newest first.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteMs []model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteMs))
	for i := range favoriteMs {
		favorites = append(favorites, toFavoriteDomain(&favoriteMs[i]))
	}

	return favorites, nil
}

// DeleteFavorite removes a favorite by its ID.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}
