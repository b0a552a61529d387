package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"happnings/config"
	"happnings/internal/domain/repository"
	"happnings/internal/domain/service"
	"happnings/internal/usecase"

	"github.com/google/uuid"
)

const defaultDispatchBatchSize = 100

type dispatchService struct {
	reminderRepo repository.ReminderRepository
	deviceRepo   repository.DeviceRepository
	publisher    service.EventPublisher
	pushSender   service.PushSender
	logger       *slog.Logger

	batchSize int

	// inline is set when no pubsub provider is configured; due reminders are
	// then delivered in the dispatch loop itself.
	inline bool
}

// NewDispatchService creates a new reminder dispatch service instance
func NewDispatchService(
	cfg *config.Config,
	logger *slog.Logger,
	reminderRepo repository.ReminderRepository,
	deviceRepo repository.DeviceRepository,
	publisher service.EventPublisher,
	pushSender service.PushSender,
) usecase.DispatchUsecase {
	batchSize := defaultDispatchBatchSize
	if cfg.Notifier != nil && cfg.Notifier.BatchSize > 0 {
		batchSize = cfg.Notifier.BatchSize
	}

	return &dispatchService{
		reminderRepo: reminderRepo,
		deviceRepo:   deviceRepo,
		publisher:    publisher,
		pushSender:   pushSender,
		logger:       logger,
		batchSize:    batchSize,
		inline:       cfg.PubSub == nil || cfg.PubSub.Provider == "",
	}
}

// DispatchDueReminders claims due schedules and hands each off for delivery.
// A failed hand-off marks the schedule failed instead of leaving it stuck in
// dispatching.
func (s *dispatchService) DispatchDueReminders(ctx context.Context, now time.Time) (int, error) {
	reminders, err := s.reminderRepo.ClaimDueReminders(ctx, now, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to claim due reminders: %w", err)
	}

	for _, reminder := range reminders {
		event := &service.ReminderEvent{
			ReminderID: reminder.ID.String(),
			UserID:     reminder.UserID.String(),
			EventID:    reminder.EventID,
			EventName:  reminder.EventName,
			EventStart: reminder.EventStart,
			FireAt:     reminder.FireAt,
		}

		if s.inline {
			if err := s.HandleReminderEvent(ctx, event); err != nil {
				s.logger.Error("inline reminder delivery failed",
					slog.String("reminder_id", event.ReminderID),
					slog.Any("error", err),
				)
			}

			continue
		}

		if err := s.publisher.PublishReminderEvent(ctx, event); err != nil {
			s.logger.Error("failed to publish reminder event",
				slog.String("reminder_id", event.ReminderID),
				slog.Any("error", err),
			)
			if completeErr := s.reminderRepo.CompleteReminder(ctx, reminder.ID, false); completeErr != nil {
				s.logger.Error("failed to mark reminder failed",
					slog.String("reminder_id", event.ReminderID),
					slog.Any("error", completeErr),
				)
			}
		}
	}

	return len(reminders), nil
}

// HandleReminderEvent delivers the push notification for a claimed schedule
// and finalizes its row. Tokens the push provider reports as dead are
// deactivated along the way.
func (s *dispatchService) HandleReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	reminderID, err := uuid.Parse(event.ReminderID)
	if err != nil {
		return fmt.Errorf("invalid reminder id %q: %w", event.ReminderID, err)
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", event.UserID, err)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find devices: %w", err)
	}

	// A user without registered devices has nothing to deliver to; the
	// schedule is still finalized so it does not refire.
	if len(devices) == 0 {
		s.logger.Info("no active devices for reminder",
			slog.String("reminder_id", event.ReminderID),
			slog.String("user_id", event.UserID),
		)

		return s.reminderRepo.CompleteReminder(ctx, reminderID, true)
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title := "Event Reminder"
	body := fmt.Sprintf("%s starts %s", event.EventName, event.EventStart.UTC().Format("Jan 2, 2006 at 15:04"))
	data := map[string]string{
		"event_id":    event.EventID,
		"reminder_id": event.ReminderID,
	}

	successCount, failureCount, invalidTokens, err := s.pushSender.SendToDevices(ctx, tokens, title, body, data)
	if err != nil {
		if completeErr := s.reminderRepo.CompleteReminder(ctx, reminderID, false); completeErr != nil {
			s.logger.Error("failed to mark reminder failed",
				slog.String("reminder_id", event.ReminderID),
				slog.Any("error", completeErr),
			)
		}

		return fmt.Errorf("failed to send push: %w", err)
	}

	for _, token := range invalidTokens {
		if err := s.deviceRepo.DeactivateByToken(ctx, token); err != nil {
			s.logger.Warn("failed to deactivate dead token", slog.Any("error", err))
		}
	}

	s.logger.Info("reminder dispatched",
		slog.String("reminder_id", event.ReminderID),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return s.reminderRepo.CompleteReminder(ctx, reminderID, successCount > 0)
}
