package impl

import (
	"context"
	"testing"
	"time"

	"happnings/internal/domain/entity"
	domainerrors "happnings/internal/domain/errors"
	"happnings/internal/domain/repository"
	mockRepo "happnings/internal/mocks/repository"
	"happnings/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderServiceFixtures struct {
	service      *reminderService
	reminderRepo *mockRepo.MockReminderRepository
}

func createTestReminderService(t *testing.T) reminderServiceFixtures {
	t.Helper()

	reminderRepo := mockRepo.NewMockReminderRepository(t)
	svc := NewReminderService(reminderRepo).(*reminderService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}

	return reminderServiceFixtures{
		service:      svc,
		reminderRepo: reminderRepo,
	}
}

func TestReminderService_ScheduleReminder_Success(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	eventStart := time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC)

	fx.reminderRepo.EXPECT().
		CreateReminder(ctx, mock.AnythingOfType("*entity.ReminderSchedule")).
		Return(nil)

	reminder, err := fx.service.ScheduleReminder(ctx, userID, &usecase.ReminderInput{
		EventID:    "ev-1",
		EventName:  "Roskilde Festival",
		EventStart: eventStart,
		Offset:     entity.OffsetOneDay,
	})
	require.NoError(t, err)

	assert.Equal(t, eventStart.Add(-24*time.Hour), reminder.FireAt)
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)
	assert.Equal(t, userID, reminder.UserID)
}

func TestReminderService_ScheduleReminder_InvalidOffset(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	_, err := fx.service.ScheduleReminder(ctx, uuid.New(), &usecase.ReminderInput{
		EventID:    "ev-1",
		EventStart: time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC),
		Offset:     entity.ReminderOffset("3_months"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReminderOffset)
}

func TestReminderService_ScheduleReminder_FireTimeInPast(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	// Event starts in two hours; a one-day offset puts the fire time in the
	// past. The repository mock has no expectations, so nothing is persisted.
	_, err := fx.service.ScheduleReminder(ctx, uuid.New(), &usecase.ReminderInput{
		EventID:    "ev-1",
		EventStart: time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC),
		Offset:     entity.OffsetOneDay,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReminderInPast)
}

func TestReminderService_ListReminders(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := []*entity.ReminderSchedule{
		{ID: uuid.New(), UserID: userID, EventID: "ev-1"},
	}
	fx.reminderRepo.EXPECT().FindRemindersByUser(ctx, userID).Return(stored, nil)

	reminders, err := fx.service.ListReminders(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, reminders)
}

func TestReminderService_RescheduleReminder_Success(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	reminderID := uuid.New()
	eventStart := time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC)

	fx.reminderRepo.EXPECT().
		FindReminderByID(ctx, reminderID).
		Return(&entity.ReminderSchedule{
			ID:         reminderID,
			UserID:     userID,
			EventStart: eventStart,
			Offset:     entity.OffsetOneHour,
			FireAt:     eventStart.Add(-time.Hour),
			Status:     entity.ReminderStatusPending,
		}, nil)
	fx.reminderRepo.EXPECT().
		UpdateReminder(ctx, mock.AnythingOfType("*entity.ReminderSchedule")).
		Return(nil)

	reminder, err := fx.service.RescheduleReminder(ctx, userID, reminderID, entity.OffsetOneWeek)
	require.NoError(t, err)

	assert.Equal(t, entity.OffsetOneWeek, reminder.Offset)
	assert.Equal(t, eventStart.Add(-7*24*time.Hour), reminder.FireAt)
	assert.Equal(t, entity.ReminderStatusPending, reminder.Status)
}

func TestReminderService_RescheduleReminder_OtherUsersReminder(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	reminderID := uuid.New()

	fx.reminderRepo.EXPECT().
		FindReminderByID(ctx, reminderID).
		Return(&entity.ReminderSchedule{
			ID:         reminderID,
			UserID:     uuid.New(),
			EventStart: time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC),
		}, nil)

	_, err := fx.service.RescheduleReminder(ctx, uuid.New(), reminderID, entity.OffsetOneHour)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReminderNotFound)
}

func TestReminderService_CancelReminder_Success(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	reminderID := uuid.New()

	fx.reminderRepo.EXPECT().
		FindReminderByID(ctx, reminderID).
		Return(&entity.ReminderSchedule{ID: reminderID, UserID: userID}, nil)
	fx.reminderRepo.EXPECT().DeleteReminder(ctx, reminderID).Return(nil)

	err := fx.service.CancelReminder(ctx, userID, reminderID)
	require.NoError(t, err)
}

func TestReminderService_CancelReminder_NotFound(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()
	reminderID := uuid.New()

	fx.reminderRepo.EXPECT().
		FindReminderByID(ctx, reminderID).
		Return(nil, repository.ErrReminderNotFound)

	err := fx.service.CancelReminder(ctx, uuid.New(), reminderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReminderNotFound)
}
