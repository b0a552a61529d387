package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderOffset is the fixed duration before an event's start at which a
// reminder fires.
type ReminderOffset string

const (
	OffsetOneHour  ReminderOffset = "1_hour"
	OffsetOneDay   ReminderOffset = "1_day"
	OffsetTwoDays  ReminderOffset = "2_days"
	OffsetOneWeek  ReminderOffset = "1_week"
)

// Duration returns the offset as a time.Duration. The second return value is
// false for an unknown offset.
func (o ReminderOffset) Duration() (time.Duration, bool) {
	switch o {
	case OffsetOneHour:
		return time.Hour, true
	case OffsetOneDay:
		return 24 * time.Hour, true
	case OffsetTwoDays:
		return 48 * time.Hour, true
	case OffsetOneWeek:
		return 7 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Reminder schedule states.
const (
	ReminderStatusPending     = "pending"
	ReminderStatusDispatching = "dispatching"
	ReminderStatusSent        = "sent"
	ReminderStatusFailed      = "failed"
)

// ReminderSchedule is a durable record of a scheduled event reminder. The
// notifier worker claims due rows and delivers the push message; cancellation
// is a row deletion, so schedules survive process restarts.
type ReminderSchedule struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	EventID    string         `json:"event_id"`
	EventName  string         `json:"event_name"`
	EventStart time.Time      `json:"event_start"`
	Offset     ReminderOffset `json:"offset"`
	FireAt     time.Time      `json:"fire_at"` // EventStart minus Offset.
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
