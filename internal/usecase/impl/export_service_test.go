package impl

import (
	"context"
	"testing"
	"time"

	"companion/config"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/infra/calendar"
	"companion/internal/infra/qrcode"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestExportService(t *testing.T) (usecase.ExportUsecase, *stubSchedule) {
	schedule := &stubSchedule{}

	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 256,
		ErrorCorrectionLevel: "M",
		BaseURL:              "https://companion.example.com",
	}

	svc := NewExportService(schedule, calendar.NewICSService(), qrcode.NewQRCodeService(cfg), newDiscardLogger())

	return svc, schedule
}

func TestExportService_ExportEvent(t *testing.T) {
	svc, schedule := createTestExportService(t)

	event := newTestEvent("Opening Keynote", time.Date(2026, 4, 18, 9, 0, 0, 0, time.UTC), 45*time.Minute)
	schedule.setEvents(event)

	file, err := svc.ExportEvent(context.Background(), event.ID)

	require.NoError(t, err)
	assert.Equal(t, "opening_keynote.ics", file.Filename)
	assert.Equal(t, "text/calendar; charset=utf-8", file.MIMEType)
	assert.Contains(t, string(file.Content), "BEGIN:VCALENDAR")
	assert.Contains(t, string(file.Content), "SUMMARY:Opening Keynote")
}

func TestExportService_ExportEvent_Idempotent(t *testing.T) {
	svc, schedule := createTestExportService(t)

	event := newTestEvent("Opening Keynote", time.Date(2026, 4, 18, 9, 0, 0, 0, time.UTC), 45*time.Minute)
	schedule.setEvents(event)

	first, err := svc.ExportEvent(context.Background(), event.ID)
	require.NoError(t, err)
	second, err := svc.ExportEvent(context.Background(), event.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestExportService_ExportEvent_UnknownEvent(t *testing.T) {
	svc, _ := createTestExportService(t)

	_, err := svc.ExportEvent(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestExportService_EventQR(t *testing.T) {
	svc, schedule := createTestExportService(t)

	event := newTestEvent("Opening Keynote", time.Date(2026, 4, 18, 9, 0, 0, 0, time.UTC), 45*time.Minute)
	schedule.setEvents(event)

	png, err := svc.EventQR(context.Background(), event.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
