package service

import "companion/internal/domain/entity"

// CalendarService serializes events into a portable calendar payload.
type CalendarService interface {
	// EventCalendar renders a single-VEVENT iCalendar document for the event.
	// Timestamps are emitted in UTC basic format and text fields are escaped
	// per RFC 5545. Fails when the event is missing usable start/end times.
	EventCalendar(event *entity.Event) ([]byte, error)

	// Filename derives a safe download filename for the event's calendar file.
	Filename(event *entity.Event) string
}
