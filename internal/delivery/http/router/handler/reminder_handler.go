package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "happnings/internal/delivery/context"
	"happnings/internal/delivery/http/response"
	"happnings/internal/domain/entity"
	"happnings/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateReminderRequest describes a new event reminder.
type CreateReminderRequest struct {
	EventID    string    `json:"event_id" validate:"required"`
	EventName  string    `json:"event_name" validate:"required"`
	EventStart time.Time `json:"event_start" validate:"required"`
	Offset     string    `json:"offset" validate:"required"`
}

// UpdateReminderRequest changes the offset of an existing reminder.
type UpdateReminderRequest struct {
	Offset string `json:"offset" validate:"required"`
}

// ReminderHandler holds dependencies for reminder handlers.
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler, injected by Fx.
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateReminder handles the reminder creation request.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "event_id, event_name, event_start and offset are required")
	}

	reminder, err := h.uc.ScheduleReminder(c.Request().Context(), userID, &usecase.ReminderInput{
		EventID:    req.EventID,
		EventName:  req.EventName,
		EventStart: req.EventStart,
		Offset:     entity.ReminderOffset(req.Offset),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder scheduled")
}

// ListReminders handles the reminder list request.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	reminders, err := h.uc.ListReminders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminders, "")
}

// UpdateReminder handles the reminder offset change request.
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reminder id")
	}

	var req UpdateReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "offset is required")
	}

	reminder, err := h.uc.RescheduleReminder(c.Request().Context(), userID, reminderID, entity.ReminderOffset(req.Offset))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminder, "Reminder updated")
}

// CancelReminder handles the reminder deletion request.
func (h *ReminderHandler) CancelReminder(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reminder id")
	}

	if err := h.uc.CancelReminder(c.Request().Context(), userID, reminderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reminder cancelled")
}
