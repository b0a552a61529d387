package impl

import (
	"context"
	"testing"

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

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, "fcm-token-1", "ios")
	require.NoError(t, err)

	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.Equal(t, "ios", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UnknownUser(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrUserNotFound)

	_, err := fx.service.RegisterDevice(ctx, uuid.New(), "fcm-token-1", "android")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "fcm-token-1", IsActive: true},
	}
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(stored, nil)

	devices, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, devices)
}

func TestDeviceService_UnregisterDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		DeleteByUserAndToken(ctx, userID, "gone-token").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.UnregisterDevice(ctx, userID, "gone-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
