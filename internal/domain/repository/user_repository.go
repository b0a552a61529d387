package repository

import (
	"context"

	"happnings/internal/domain/entity"
	"happnings/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	// Returns ErrDuplicateEmail when the email is already taken.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUser persists changes to a user account.
	UpdateUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes a user account and its dependent rows.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
