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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func fromDeviceDomain(device *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        device.ID,
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

func toDeviceDomain(m *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        m.ID,
		UserID:    m.UserID,
		FCMToken:  m.FCMToken,
		Platform:  m.Platform,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UpsertDevice registers a device token. A token that changed hands is
// reassigned to the new user and reactivated in place.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)
	deviceM.IsActive = true

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "fcm_token"}},
			DoUpdates: clause.Assignments(map[string]any{
				"user_id":   deviceM.UserID,
				"platform":  deviceM.Platform,
				"is_active": true,
			}),
		}).
		Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.IsActive = true
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindActiveDevicesByUser retrieves all active devices for a user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceMs []model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&deviceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceMs))
	for i := range deviceMs {
		devices = append(devices, toDeviceDomain(&deviceMs[i]))
	}

	return devices, nil
}

// DeactivateByToken marks the device with the given FCM token inactive.
func (repo *deviceRepository) DeactivateByToken(ctx context.Context, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token = ?", fcmToken).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteByUserAndToken removes a device registration owned by the user.
func (repo *deviceRepository) DeleteByUserAndToken(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND fcm_token = ?", userID, fcmToken).
		Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}
