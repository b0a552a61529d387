package usecase

import (
	"context"

	"happnings/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase defines the interface for push device registration use cases
type DeviceUsecase interface {
	// RegisterDevice registers an FCM token for the user, taking over the
	// token if it was previously registered to another account.
	RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.UserDevice, error)

	// ListDevices returns the user's active devices.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UnregisterDevice removes a device registration owned by the user.
	UnregisterDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
