package usecase

import (
	"context"
	"time"

	"happnings/internal/domain/service"
)

// DispatchUsecase defines the interface for reminder dispatch, driven by the
// notifier worker.
type DispatchUsecase interface {
	// DispatchDueReminders claims schedules due at now and hands each to the
	// configured publisher. With the no-op publisher the push is delivered
	// inline instead. Returns the number of claimed schedules.
	DispatchDueReminders(ctx context.Context, now time.Time) (int, error)

	// HandleReminderEvent delivers the push notification for a claimed
	// schedule and finalizes its row.
	HandleReminderEvent(ctx context.Context, event *service.ReminderEvent) error
}
