package impl

import (
	"context"
	"testing"
	"time"

	"happnings/config"
	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	"happnings/internal/domain/service"
	mockRepo "happnings/internal/mocks/repository"
	mockService "happnings/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      *userService
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockRefreshTokenRepository
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	cfg := &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 3}}
	svc := NewUserService(cfg, userRepo, tokenRepo, txManager, hasher, tokenService).(*userService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		txManager:    txManager,
		factory:      factory,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectTransaction routes tx callbacks through the factory mock.
func expectTransaction(fx userServiceFixtures, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	expectTransaction(fx, ctx)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, session *entity.RefreshToken) {
			assert.Equal(t, hashToken("refresh-token"), session.TokenHash)
			assert.Equal(t, time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC), session.ExpiresAt)
		}).
		Return(nil)

	user, pair, err := fx.service.Register(ctx, "anna@example.com", "s3cret", "Anna")
	require.NoError(t, err)

	assert.Equal(t, "anna@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	expectTransaction(fx, ctx)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, _, err := fx.service.Register(ctx, "anna@example.com", "s3cret", "Anna")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := fx.service.Login(ctx, "nobody@example.com", "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "anna@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "anna@example.com", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, _, err := fx.service.Login(ctx, "anna@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionCapRevokesOldSessions(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	now := fx.service.now()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "anna@example.com").
		Return(&entity.User{ID: userID, Email: "anna@example.com", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed").Return(true)

	expectTransaction(fx, ctx)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	// Already at the cap of three sessions, so all existing sessions are
	// revoked before the new one is issued.
	fx.tokenRepo.EXPECT().CountActiveForUser(ctx, userID, now).Return(3, nil)
	fx.tokenRepo.EXPECT().RevokeAllForUser(ctx, userID, now).Return(nil)

	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	_, pair, err := fx.service.Login(ctx, "anna@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestUserService_RefreshTokens_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	now := fx.service.now()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("old-refresh")).
		Return(&entity.RefreshToken{
			ID:        sessionID,
			UserID:    userID,
			TokenHash: hashToken("old-refresh"),
			ExpiresAt: now.Add(24 * time.Hour),
		}, nil)

	expectTransaction(fx, ctx)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)
	fx.tokenRepo.EXPECT().RevokeRefreshToken(ctx, sessionID, now).Return(nil)

	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	pair, err := fx.service.RefreshTokens(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestUserService_RefreshTokens_ExpiredSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	now := fx.service.now()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("stale-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("stale-refresh")).
		Return(&entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			ExpiresAt: now.Add(-time.Minute),
		}, nil)

	_, err := fx.service.RefreshTokens(ctx, "stale-refresh")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshTokens_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("forged").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("forged")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshTokens(ctx, "forged")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	now := fx.service.now()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("refresh-token")).
		Return(&entity.RefreshToken{ID: sessionID, ExpiresAt: now.Add(time.Hour)}, nil)
	fx.tokenRepo.EXPECT().RevokeRefreshToken(ctx, sessionID, now).Return(nil)

	err := fx.service.Logout(ctx, "refresh-token")
	require.NoError(t, err)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "anna@example.com", Name: "Anna"}, nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "Anna K", user.Name)
		}).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, "Anna K")
	require.NoError(t, err)
	assert.Equal(t, "Anna K", user.Name)
}
