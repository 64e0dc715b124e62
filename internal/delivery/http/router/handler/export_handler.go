package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"companion/internal/delivery/http/response"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExportHandler holds dependencies for event export handlers.
type ExportHandler struct {
	uc     usecase.ExportUsecase
	logger *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(uc usecase.ExportUsecase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, logger: logger}
}

// DownloadCalendar streams the event's iCalendar file as an attachment.
func (h *ExportHandler) DownloadCalendar(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	file, err := h.uc.ExportEvent(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Filename))

	return c.Blob(http.StatusOK, file.MIMEType, file.Content)
}

// EventQR streams a QR code PNG deep-linking to the event.
func (h *ExportHandler) EventQR(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	png, err := h.uc.EventQR(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
