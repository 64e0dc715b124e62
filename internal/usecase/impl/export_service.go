package impl

import (
	"context"
	"log/slog"

	"companion/internal/domain/service"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	schedule usecase.ScheduleUsecase
	calendar service.CalendarService
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(
	schedule usecase.ScheduleUsecase,
	calendar service.CalendarService,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.ExportUsecase {
	return &exportService{
		schedule: schedule,
		calendar: calendar,
		qrcode:   qrcode,
		logger:   logger,
	}
}

// ExportEvent renders one event as an iCalendar download. Exporting the same
// event twice yields byte-identical output, so repeated downloads are safe.
func (srv *exportService) ExportEvent(ctx context.Context, eventID uuid.UUID) (*usecase.CalendarFile, error) {
	event, err := srv.schedule.FindEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	content, err := srv.calendar.EventCalendar(event)
	if err != nil {
		srv.logger.Error("Failed to serialize event calendar", slog.Any("error", err), slog.Any("event_id", eventID))

		return nil, errors.Wrap(err, "failed to serialize event calendar")
	}

	return &usecase.CalendarFile{
		Content:  content,
		Filename: srv.calendar.Filename(event),
		MIMEType: "text/calendar; charset=utf-8",
	}, nil
}

// EventQR renders a QR code PNG deep-linking to the event.
func (srv *exportService) EventQR(ctx context.Context, eventID uuid.UUID) ([]byte, error) {
	event, err := srv.schedule.FindEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateEventQR(event.ID)
	if err != nil {
		srv.logger.Error("Failed to generate event QR code", slog.Any("error", err), slog.Any("event_id", eventID))

		return nil, errors.Wrap(err, "failed to generate event qr code")
	}

	return png, nil
}
