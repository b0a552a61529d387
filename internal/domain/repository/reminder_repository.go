package repository

import (
	"context"
	"time"

	"happnings/internal/domain/entity"
	"happnings/internal/errors"

	"github.com/google/uuid"
)

// ErrReminderNotFound is returned when a reminder schedule is not found.
var ErrReminderNotFound = errors.New("reminder schedule not found")

// ReminderRepository defines the interface for reminder schedule persistence.
type ReminderRepository interface {
	// CreateReminder persists a new reminder schedule.
	CreateReminder(ctx context.Context, reminder *entity.ReminderSchedule) error

	// FindReminderByID retrieves a schedule by its unique ID.
	FindReminderByID(ctx context.Context, id uuid.UUID) (*entity.ReminderSchedule, error)

	// FindRemindersByUser retrieves all schedules for a user, soonest first.
	FindRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ReminderSchedule, error)

	// UpdateReminder persists offset and fire time changes for a schedule.
	UpdateReminder(ctx context.Context, reminder *entity.ReminderSchedule) error

	// DeleteReminder removes a schedule by its ID.
	// Returns ErrReminderNotFound when no row was deleted.
	DeleteReminder(ctx context.Context, id uuid.UUID) error

	// ClaimDueReminders atomically marks up to limit pending schedules with
	// fire_at <= now as dispatching and returns them. A schedule claimed here
	// is invisible to concurrent claims, so two workers never dispatch the
	// same reminder.
	ClaimDueReminders(ctx context.Context, now time.Time, limit int) ([]*entity.ReminderSchedule, error)

	// CompleteReminder finalizes a dispatched schedule: the row is deleted on
	// success and marked failed otherwise.
	CompleteReminder(ctx context.Context, id uuid.UUID, delivered bool) error
}
