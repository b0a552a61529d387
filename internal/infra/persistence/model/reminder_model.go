package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderModel mirrors the 'reminder_schedules' table. The composite index on
// (status, fire_at) serves the notifier's due-row scan.
type ReminderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EventID    string    `gorm:"type:varchar(64);not null"`
	EventName  string    `gorm:"type:varchar(255);not null"`
	EventStart time.Time `gorm:"not null"`
	Offset     string    `gorm:"type:varchar(20);not null;column:reminder_offset"`
	FireAt     time.Time `gorm:"not null;index:idx_reminders_due,priority:2"`
	Status     string    `gorm:"type:varchar(20);not null;default:pending;index:idx_reminders_due,priority:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminder_schedules"
}
