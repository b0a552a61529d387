package service

import (
	"context"
	"time"
)

// ReminderEvent is published when a reminder schedule becomes due and is
// claimed for dispatch. The notifier's push endpoint consumes it.
type ReminderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ReminderID string    `json:"reminder_id"`
	UserID     string    `json:"user_id"`
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name"`
	EventStart time.Time `json:"event_start"`
	FireAt     time.Time `json:"fire_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderEvent publishes a due-reminder event for async dispatch
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
