package handler

import (
	"log/slog"
	"net/http"

	"companion/internal/delivery/http/response"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReminderHandler holds dependencies for reminder scheduler handlers.
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler, injected by Fx.
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{uc: uc, logger: logger}
}

// Status reports the opt-in flag and the currently armed reminders.
func (h *ReminderHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"opt_in": h.uc.OptIn(),
		"armed":  h.uc.Armed(),
	}, "")
}

// OptInInput is the request body for flipping the reminder opt-in flag.
type OptInInput struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// SetOptIn flips the persisted opt-in flag.
func (h *ReminderHandler) SetOptIn(c echo.Context) error {
	var input OptInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid opt-in input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "enabled field is required")
	}

	permission, err := h.uc.SetOptIn(c.Request().Context(), *input.Enabled)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"opt_in":     h.uc.OptIn(),
		"permission": permission,
	}, "")
}

// ScheduleEvent arms a one-off reminder for a single event.
func (h *ReminderHandler) ScheduleEvent(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	if err := h.uc.ScheduleEventReminder(c.Request().Context(), eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"event_id": eventID}, "Reminder armed")
}
