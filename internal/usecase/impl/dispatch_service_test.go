package impl

import (
	"context"
	"testing"
	"time"

	"happnings/config"
	"happnings/internal/domain/entity"
	"happnings/internal/domain/service"
	mockRepo "happnings/internal/mocks/repository"
	mockService "happnings/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchServiceFixtures struct {
	service      *dispatchService
	reminderRepo *mockRepo.MockReminderRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	publisher    *mockService.MockEventPublisher
	pushSender   *mockService.MockPushSender
}

func createTestDispatchService(t *testing.T, cfg *config.Config) dispatchServiceFixtures {
	t.Helper()

	reminderRepo := mockRepo.NewMockReminderRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	pushSender := mockService.NewMockPushSender(t)

	svc := NewDispatchService(cfg, newTestLogger(), reminderRepo, deviceRepo, publisher, pushSender).(*dispatchService)

	return dispatchServiceFixtures{
		service:      svc,
		reminderRepo: reminderRepo,
		deviceRepo:   deviceRepo,
		publisher:    publisher,
		pushSender:   pushSender,
	}
}

func dueReminder(userID uuid.UUID) *entity.ReminderSchedule {
	return &entity.ReminderSchedule{
		ID:         uuid.New(),
		UserID:     userID,
		EventID:    "ev-1",
		EventName:  "Roskilde Festival",
		EventStart: time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC),
		FireAt:     time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC),
		Status:     entity.ReminderStatusDispatching,
	}
}

func TestDispatchService_DispatchDueReminders_InlineDelivery(t *testing.T) {
	fx := createTestDispatchService(t, &config.Config{})
	ctx := context.Background()
	now := time.Date(2026, 9, 4, 20, 0, 30, 0, time.UTC)
	userID := uuid.New()
	reminder := dueReminder(userID)

	fx.reminderRepo.EXPECT().
		ClaimDueReminders(ctx, now, defaultDispatchBatchSize).
		Return([]*entity.ReminderSchedule{reminder}, nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{FCMToken: "token-a"},
			{FCMToken: "token-b"},
		}, nil)

	fx.pushSender.EXPECT().
		SendToDevices(ctx, []string{"token-a", "token-b"}, "Event Reminder",
			"Roskilde Festival starts Sep 5, 2026 at 20:00",
			map[string]string{"event_id": "ev-1", "reminder_id": reminder.ID.String()}).
		Return(2, 0, nil, nil)

	fx.reminderRepo.EXPECT().CompleteReminder(ctx, reminder.ID, true).Return(nil)

	count, err := fx.service.DispatchDueReminders(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchService_DispatchDueReminders_PublishesWhenBrokerConfigured(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	fx := createTestDispatchService(t, cfg)
	ctx := context.Background()
	now := time.Date(2026, 9, 4, 20, 0, 30, 0, time.UTC)
	reminder := dueReminder(uuid.New())

	fx.reminderRepo.EXPECT().
		ClaimDueReminders(ctx, now, defaultDispatchBatchSize).
		Return([]*entity.ReminderSchedule{reminder}, nil)

	// Delivery happens asynchronously on the subscriber side; the device and
	// push mocks must stay untouched here.
	fx.publisher.EXPECT().
		PublishReminderEvent(ctx, mock.AnythingOfType("*service.ReminderEvent")).
		Run(func(_ context.Context, event *service.ReminderEvent) {
			assert.Equal(t, reminder.ID.String(), event.ReminderID)
			assert.Equal(t, "ev-1", event.EventID)
		}).
		Return(nil)

	count, err := fx.service.DispatchDueReminders(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchService_DispatchDueReminders_PublishFailureMarksFailed(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	fx := createTestDispatchService(t, cfg)
	ctx := context.Background()
	now := time.Now()
	reminder := dueReminder(uuid.New())

	fx.reminderRepo.EXPECT().
		ClaimDueReminders(ctx, now, defaultDispatchBatchSize).
		Return([]*entity.ReminderSchedule{reminder}, nil)
	fx.publisher.EXPECT().
		PublishReminderEvent(ctx, mock.AnythingOfType("*service.ReminderEvent")).
		Return(errors.New("broker unavailable"))
	fx.reminderRepo.EXPECT().CompleteReminder(ctx, reminder.ID, false).Return(nil)

	count, err := fx.service.DispatchDueReminders(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchService_HandleReminderEvent_NoDevices(t *testing.T) {
	fx := createTestDispatchService(t, &config.Config{})
	ctx := context.Background()
	reminderID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	// Finalized as delivered so the schedule does not refire.
	fx.reminderRepo.EXPECT().CompleteReminder(ctx, reminderID, true).Return(nil)

	err := fx.service.HandleReminderEvent(ctx, &service.ReminderEvent{
		ReminderID: reminderID.String(),
		UserID:     userID.String(),
		EventID:    "ev-1",
	})
	require.NoError(t, err)
}

func TestDispatchService_HandleReminderEvent_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestDispatchService(t, &config.Config{})
	ctx := context.Background()
	reminderID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{FCMToken: "live-token"},
			{FCMToken: "dead-token"},
		}, nil)

	fx.pushSender.EXPECT().
		SendToDevices(ctx, []string{"live-token", "dead-token"}, "Event Reminder",
			mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"dead-token"}, nil)

	fx.deviceRepo.EXPECT().DeactivateByToken(ctx, "dead-token").Return(nil)
	fx.reminderRepo.EXPECT().CompleteReminder(ctx, reminderID, true).Return(nil)

	err := fx.service.HandleReminderEvent(ctx, &service.ReminderEvent{
		ReminderID: reminderID.String(),
		UserID:     userID.String(),
		EventID:    "ev-1",
		EventName:  "Roskilde Festival",
		EventStart: time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestDispatchService_HandleReminderEvent_SendFailure(t *testing.T) {
	fx := createTestDispatchService(t, &config.Config{})
	ctx := context.Background()
	reminderID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{FCMToken: "token-a"}}, nil)

	fx.pushSender.EXPECT().
		SendToDevices(ctx, []string{"token-a"}, "Event Reminder",
			mock.AnythingOfType("string"), mock.Anything).
		Return(0, 0, nil, errors.New("fcm unreachable"))

	fx.reminderRepo.EXPECT().CompleteReminder(ctx, reminderID, false).Return(nil)

	err := fx.service.HandleReminderEvent(ctx, &service.ReminderEvent{
		ReminderID: reminderID.String(),
		UserID:     userID.String(),
		EventID:    "ev-1",
		EventStart: time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fcm unreachable")
}
