package postgres

import (
	"context"
	"time"

	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	"happnings/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

func fromReminderDomain(reminder *entity.ReminderSchedule) *model.ReminderModel {
	return &model.ReminderModel{
		ID:         reminder.ID,
		UserID:     reminder.UserID,
		EventID:    reminder.EventID,
		EventName:  reminder.EventName,
		EventStart: reminder.EventStart,
		Offset:     string(reminder.Offset),
		FireAt:     reminder.FireAt,
		Status:     reminder.Status,
		CreatedAt:  reminder.CreatedAt,
		UpdatedAt:  reminder.UpdatedAt,
	}
}

func toReminderDomain(m *model.ReminderModel) *entity.ReminderSchedule {
	return &entity.ReminderSchedule{
		ID:         m.ID,
		UserID:     m.UserID,
		EventID:    m.EventID,
		EventName:  m.EventName,
		EventStart: m.EventStart,
		Offset:     entity.ReminderOffset(m.Offset),
		FireAt:     m.FireAt,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// CreateReminder persists a new reminder schedule.
func (repo *reminderRepository) CreateReminder(ctx context.Context, reminder *entity.ReminderSchedule) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reminder schedule")
	}

	// Update the entity with generated values
	reminder.ID = reminderM.ID
	reminder.CreatedAt = reminderM.CreatedAt
	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

// FindReminderByID retrieves a schedule by its unique ID.
func (repo *reminderRepository) FindReminderByID(ctx context.Context, id uuid.UUID) (*entity.ReminderSchedule, error) {
	var reminderM model.ReminderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder by id")
	}

	return toReminderDomain(&reminderM), nil
}

// FindRemindersByUser retrieves all schedules for a user, soonest first.
func (repo *reminderRepository) FindRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ReminderSchedule, error) {
	var reminderMs []model.ReminderModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("fire_at ASC").
		Find(&reminderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	reminders := make([]*entity.ReminderSchedule, 0, len(reminderMs))
	for i := range reminderMs {
		reminders = append(reminders, toReminderDomain(&reminderMs[i]))
	}

	return reminders, nil
}

// UpdateReminder persists offset and fire time changes for a schedule.
func (repo *reminderRepository) UpdateReminder(ctx context.Context, reminder *entity.ReminderSchedule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("id = ?", reminder.ID).
		Updates(map[string]any{
			"reminder_offset": string(reminder.Offset),
			"fire_at":         reminder.FireAt,
			"status":          reminder.Status,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reminder schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// DeleteReminder removes a schedule by its ID.
func (repo *reminderRepository) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReminderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reminder schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// ClaimDueReminders atomically flips up to limit due pending rows to
// dispatching and returns them. SELECT ... FOR UPDATE SKIP LOCKED keeps
// concurrent workers from claiming the same rows.
func (repo *reminderRepository) ClaimDueReminders(ctx context.Context, now time.Time, limit int) ([]*entity.ReminderSchedule, error) {
	var reminderMs []model.ReminderModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? AND fire_at <= ?", entity.ReminderStatusPending, now).
			Order("fire_at ASC").
			Limit(limit).
			Find(&reminderMs).Error; err != nil {
			return err
		}

		if len(reminderMs) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(reminderMs))
		for i := range reminderMs {
			ids = append(ids, reminderMs[i].ID)
		}

		return tx.
			Model(&model.ReminderModel{}).
			Where("id IN ?", ids).
			Update("status", entity.ReminderStatusDispatching).Error
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to claim due reminders")
	}

	reminders := make([]*entity.ReminderSchedule, 0, len(reminderMs))
	for i := range reminderMs {
		reminderMs[i].Status = entity.ReminderStatusDispatching
		reminders = append(reminders, toReminderDomain(&reminderMs[i]))
	}

	return reminders, nil
}

// CompleteReminder finalizes a dispatched schedule. Delivered rows are
// removed; failures stay for inspection.
func (repo *reminderRepository) CompleteReminder(ctx context.Context, id uuid.UUID, delivered bool) error {
	if delivered {
		result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReminderModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete reminder schedule")
		}
		if result.RowsAffected == 0 {
			return repository.ErrReminderNotFound
		}

		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("id = ?", id).
		Update("status", entity.ReminderStatusFailed)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reminder failed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}
