package repository

import (
	"context"

	"happnings/internal/domain/entity"
	"happnings/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for user device persistence.
type DeviceRepository interface {
	// UpsertDevice registers a device token for a user, reactivating and
	// reassigning an existing token row if the token is already known.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateByToken marks the device with the given FCM token inactive.
	// Returns ErrDeviceNotFound when the token is unknown.
	DeactivateByToken(ctx context.Context, fcmToken string) error

	// DeleteByUserAndToken removes a device registration owned by the user.
	DeleteByUserAndToken(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
