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

// ScheduleHandler holds dependencies for schedule browsing handlers.
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{uc: uc, logger: logger}
}

// Search lists the schedule, filtered by day, track and title text.
func (h *ScheduleHandler) Search(c echo.Context) error {
	query := usecase.ScheduleQuery{
		Day:   c.QueryParam("day"),
		Track: c.QueryParam("track"),
		Text:  c.QueryParam("q"),
	}

	events, err := h.uc.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// GetEvent retrieves a single event by id.
func (h *ScheduleHandler) GetEvent(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event, err := h.uc.FindEvent(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// ListTracks returns the static track table.
func (h *ScheduleHandler) ListTracks(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Tracks(), "")
}

// ListSpeakers returns the static speaker directory.
func (h *ScheduleHandler) ListSpeakers(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Speakers(), "")
}
