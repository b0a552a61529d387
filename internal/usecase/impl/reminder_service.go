package impl

import (
	"context"
	"fmt"
	"time"

	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	"happnings/internal/errors"
	"happnings/internal/usecase"

	"github.com/google/uuid"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository

	now func() time.Time
}

// NewReminderService creates a new reminder service instance
func NewReminderService(reminderRepo repository.ReminderRepository) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

// ScheduleReminder creates a durable schedule firing Offset before the event
// starts. A fire time already in the past is rejected rather than fired
// immediately.
func (s *reminderService) ScheduleReminder(ctx context.Context, userID uuid.UUID, input *usecase.ReminderInput) (*entity.ReminderSchedule, error) {
	offset, ok := input.Offset.Duration()
	if !ok {
		return nil, domainerrors.ErrInvalidReminderOffset
	}

	fireAt := input.EventStart.Add(-offset)
	if !fireAt.After(s.now()) {
		return nil, domainerrors.ErrReminderInPast
	}

	reminder := &entity.ReminderSchedule{
		UserID:     userID,
		EventID:    input.EventID,
		EventName:  input.EventName,
		EventStart: input.EventStart,
		Offset:     input.Offset,
		FireAt:     fireAt,
		Status:     entity.ReminderStatusPending,
	}

	if err := s.reminderRepo.CreateReminder(ctx, reminder); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder, nil
}

// ListReminders returns the user's schedules, soonest first.
func (s *reminderService) ListReminders(ctx context.Context, userID uuid.UUID) ([]*entity.ReminderSchedule, error) {
	reminders, err := s.reminderRepo.FindRemindersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return reminders, nil
}

// RescheduleReminder changes the offset of an existing schedule, recomputing
// its fire time under the same past-time rule as creation.
func (s *reminderService) RescheduleReminder(ctx context.Context, userID, reminderID uuid.UUID, offset entity.ReminderOffset) (*entity.ReminderSchedule, error) {
	duration, ok := offset.Duration()
	if !ok {
		return nil, domainerrors.ErrInvalidReminderOffset
	}

	reminder, err := s.ownedReminder(ctx, userID, reminderID)
	if err != nil {
		return nil, err
	}

	fireAt := reminder.EventStart.Add(-duration)
	if !fireAt.After(s.now()) {
		return nil, domainerrors.ErrReminderInPast
	}

	reminder.Offset = offset
	reminder.FireAt = fireAt
	reminder.Status = entity.ReminderStatusPending

	if err := s.reminderRepo.UpdateReminder(ctx, reminder); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, domainerrors.ErrReminderNotFound
		}

		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return reminder, nil
}

// CancelReminder deletes a schedule owned by the user. Cancellation is a row
// deletion, so a cancelled reminder can never fire.
func (s *reminderService) CancelReminder(ctx context.Context, userID, reminderID uuid.UUID) error {
	reminder, err := s.ownedReminder(ctx, userID, reminderID)
	if err != nil {
		return err
	}

	if err := s.reminderRepo.DeleteReminder(ctx, reminder.ID); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return domainerrors.ErrReminderNotFound
		}

		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

// ownedReminder loads a schedule and verifies ownership. A schedule owned by
// another user is reported as not found, not as forbidden.
func (s *reminderService) ownedReminder(ctx context.Context, userID, reminderID uuid.UUID) (*entity.ReminderSchedule, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, domainerrors.ErrReminderNotFound
		}

		return nil, fmt.Errorf("failed to find reminder: %w", err)
	}

	if reminder.UserID != userID {
		return nil, domainerrors.ErrReminderNotFound
	}

	return reminder, nil
}
