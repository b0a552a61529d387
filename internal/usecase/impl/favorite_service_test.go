package impl

import (
	"context"
	"testing"
	"time"

	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	mockRepo "happnings/internal/mocks/repository"
	"happnings/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	t.Helper()

	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	return favoriteServiceFixtures{
		service:      NewFavoriteService(favoriteRepo),
		favoriteRepo: favoriteRepo,
	}
}

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(nil)

	favorite, err := fx.service.AddFavorite(ctx, userID, &usecase.FavoriteInput{
		EventID:   "ev-1",
		Title:     "Roskilde Festival",
		EventDate: "2026-06-27",
		Price:     "250.00 DKK",
		VenueName: "Dyrskuepladsen",
		Address:   "Darupvej 19, Roskilde",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, "ev-1", favorite.EventID)
	assert.Equal(t, "Roskilde Festival", favorite.Title)
	assert.False(t, favorite.CreatedAt.IsZero())
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	_, err := fx.service.AddFavorite(ctx, userID, &usecase.FavoriteInput{EventID: "ev-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteExists)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := []*entity.Favorite{
		{ID: uuid.New(), UserID: userID, EventID: "ev-2", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, EventID: "ev-1", CreatedAt: time.Now().Add(-time.Hour)},
	}
	fx.favoriteRepo.EXPECT().FindFavoritesByUser(ctx, userID).Return(stored, nil)

	favorites, err := fx.service.ListFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, favorites)
}

func TestFavoriteService_RemoveFavorite_Success(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	favoriteID := uuid.New()

	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndEvent(ctx, userID, "ev-1").
		Return(&entity.Favorite{ID: favoriteID, UserID: userID, EventID: "ev-1"}, nil)
	fx.favoriteRepo.EXPECT().DeleteFavorite(ctx, favoriteID).Return(nil)

	err := fx.service.RemoveFavorite(ctx, userID, "ev-1")
	require.NoError(t, err)
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndEvent(ctx, userID, "ev-404").
		Return(nil, repository.ErrFavoriteNotFound)

	err := fx.service.RemoveFavorite(ctx, userID, "ev-404")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}
