package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CalendarFile is a downloadable calendar payload for one event.
type CalendarFile struct {
	Content  []byte `json:"-"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
}

// ExportUsecase serializes events into shareable artifacts.
type ExportUsecase interface {
	// ExportEvent renders the event as an iCalendar download.
	ExportEvent(ctx context.Context, eventID uuid.UUID) (*CalendarFile, error)

	// EventQR renders a QR code PNG deep-linking to the event.
	EventQR(ctx context.Context, eventID uuid.UUID) ([]byte, error)
}
