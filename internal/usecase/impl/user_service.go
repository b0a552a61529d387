package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"happnings/config"
	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	"happnings/internal/domain/service"
	"happnings/internal/errors"
	"happnings/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo     repository.UserRepository
	tokenRepo    repository.RefreshTokenRepository
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService

	maxActiveSessions int
	now               func() time.Time
}

// NewUserService creates a new user service instance
func NewUserService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
) usecase.UserUsecase {
	maxSessions := 0
	if cfg.Auth != nil {
		maxSessions = cfg.Auth.MaxActiveSessions
	}

	return &userService{
		userRepo:          userRepo,
		tokenRepo:         tokenRepo,
		txManager:         txManager,
		hasher:            hasher,
		tokenService:      tokenService,
		maxActiveSessions: maxSessions,
		now:               time.Now,
	}
}

// hashToken derives the storage form of a refresh token. Only the hash ever
// touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// Register creates a new account and issues an initial token pair. Account
// and session rows are written in one transaction.
func (s *userService) Register(ctx context.Context, email, password, name string) (*entity.User, *usecase.TokenPair, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}

	var pair *usecase.TokenPair
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().CreateUser(ctx, user); err != nil {
			return err
		}

		pair, err = s.issueSession(ctx, factory.NewRefreshTokenRepository(), user.ID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, pair, nil
}

// Login verifies credentials and issues a token pair. Whether the email is
// unknown or the password wrong, the caller sees the same error.
func (s *userService) Login(ctx context.Context, email, password string) (*entity.User, *usecase.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	var pair *usecase.TokenPair
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokenRepo := factory.NewRefreshTokenRepository()

		if s.maxActiveSessions > 0 {
			count, err := tokenRepo.CountActiveForUser(ctx, user.ID, s.now())
			if err != nil {
				return err
			}
			// At the session cap, older sessions are logged out in favor of
			// the new one.
			if count >= int64(s.maxActiveSessions) {
				if err := tokenRepo.RevokeAllForUser(ctx, user.ID, s.now()); err != nil {
					return err
				}
			}
		}

		var err error
		pair, err = s.issueSession(ctx, tokenRepo, user.ID)

		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return user, pair, nil
}

// RefreshTokens rotates a refresh token into a new pair. The presented token
// is revoked in the same transaction that records its replacement.
func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := s.tokenRepo.FindRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	if stored.UserID != claims.UserID || !stored.IsActive(s.now()) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	var pair *usecase.TokenPair
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokenRepo := factory.NewRefreshTokenRepository()

		if err := tokenRepo.RevokeRefreshToken(ctx, stored.ID, s.now()); err != nil {
			return err
		}

		var err error
		pair, err = s.issueSession(ctx, tokenRepo, stored.UserID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return pair, nil
}

// Logout revokes the session identified by the refresh token.
func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		return domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := s.tokenRepo.FindRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenInvalid
		}

		return fmt.Errorf("failed to find refresh token: %w", err)
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, stored.ID, s.now()); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenInvalid
		}

		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// GetProfile retrieves the account for the given user ID.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfile changes the user's display name.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteAccount removes the account. Dependent rows (sessions, favorites,
// reminder schedules, devices) go with it via cascading deletes.
func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// issueSession generates a token pair and records the refresh token session.
func (s *userService) issueSession(ctx context.Context, tokenRepo repository.RefreshTokenRepository, userID uuid.UUID) (*usecase.TokenPair, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: s.now().Add(s.tokenService.GetRefreshTokenDuration()),
	}
	if err := tokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
