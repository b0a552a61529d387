package usecase

import (
	"context"
	"time"

	"happnings/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderInput describes a new event reminder.
type ReminderInput struct {
	EventID    string
	EventName  string
	EventStart time.Time
	Offset     entity.ReminderOffset
}

// ReminderUsecase defines the interface for reminder scheduling use cases
type ReminderUsecase interface {
	// ScheduleReminder creates a durable reminder schedule firing Offset
	// before the event starts.
	ScheduleReminder(ctx context.Context, userID uuid.UUID, input *ReminderInput) (*entity.ReminderSchedule, error)

	// ListReminders returns the user's schedules, soonest first.
	ListReminders(ctx context.Context, userID uuid.UUID) ([]*entity.ReminderSchedule, error)

	// RescheduleReminder changes the offset of an existing schedule.
	RescheduleReminder(ctx context.Context, userID, reminderID uuid.UUID, offset entity.ReminderOffset) (*entity.ReminderSchedule, error)

	// CancelReminder deletes a schedule owned by the user.
	CancelReminder(ctx context.Context, userID, reminderID uuid.UUID) error
}
