package handler

import (
	"net/http"
	"testing"
	"time"

	deliverycontext "happnings/internal/delivery/context"
	"happnings/internal/domain/entity"
	mockUsecase "happnings/internal/mocks/usecase"
	"happnings/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderHandler_CreateReminder_Success(t *testing.T) {
	uc := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(uc, newDiscardLogger())

	userID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPost, "/api/notifications",
		`{"event_id":"ev-1","event_name":"Roskilde Festival","event_start":"2026-09-05T20:00:00Z","offset":"1_day"}`)
	deliverycontext.SetUserID(c, userID)

	eventStart := time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC)
	uc.EXPECT().
		ScheduleReminder(c.Request().Context(), userID, &usecase.ReminderInput{
			EventID:    "ev-1",
			EventName:  "Roskilde Festival",
			EventStart: eventStart,
			Offset:     entity.OffsetOneDay,
		}).
		Return(&entity.ReminderSchedule{
			ID:         uuid.New(),
			UserID:     userID,
			EventID:    "ev-1",
			EventName:  "Roskilde Festival",
			EventStart: eventStart,
			FireAt:     eventStart.Add(-24 * time.Hour),
			Status:     entity.ReminderStatusPending,
		}, nil)

	require.NoError(t, h.CreateReminder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Roskilde Festival")
}

func TestReminderHandler_CreateReminder_MissingOffset(t *testing.T) {
	uc := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/notifications",
		`{"event_id":"ev-1","event_name":"Roskilde Festival","event_start":"2026-09-05T20:00:00Z"}`)
	deliverycontext.SetUserID(c, uuid.New())

	require.NoError(t, h.CreateReminder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReminderHandler_UpdateReminder_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPut, "/api/notifications/not-a-uuid", `{"offset":"1_week"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	deliverycontext.SetUserID(c, uuid.New())

	require.NoError(t, h.UpdateReminder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReminderHandler_CancelReminder(t *testing.T) {
	uc := mockUsecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(uc, newDiscardLogger())

	userID := uuid.New()
	reminderID := uuid.New()
	c, rec := newJSONContext(t, http.MethodDelete, "/api/notifications/"+reminderID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(reminderID.String())
	deliverycontext.SetUserID(c, userID)

	uc.EXPECT().CancelReminder(c.Request().Context(), userID, reminderID).Return(nil)

	require.NoError(t, h.CancelReminder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
