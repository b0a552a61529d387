package impl

import (
	"context"
	"fmt"

	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	"happnings/internal/errors"
	"happnings/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers an FCM token for the user. A token that moved to a
// different account is reassigned rather than duplicated.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.UserDevice, error) {
	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: fcmToken,
		Platform: platform,
		IsActive: true,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to register device: %w", err)
	}

	return device, nil
}

// ListDevices returns the user's active devices.
func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return devices, nil
}

// UnregisterDevice removes a device registration owned by the user.
func (s *deviceService) UnregisterDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	if err := s.deviceRepo.DeleteByUserAndToken(ctx, userID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to unregister device: %w", err)
	}

	return nil
}
