// Package calendar renders events as iCalendar documents for export.
package calendar

import (
	"strings"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/service"
	"companion/internal/util"

	ical "github.com/arran4/golang-ical"
)

// icsService implements the CalendarService interface using golang-ical.
//
// Output is deterministic: the same event always serializes to the same
// bytes, so repeated exports are idempotent. Timestamps are emitted in UTC
// basic format and text fields are escaped per RFC 5545 before being set.
type icsService struct {
	prodID string
}

// NewICSService is the constructor for icsService.
func NewICSService() service.CalendarService {
	return &icsService{prodID: "-//companion//schedule//EN"}
}

// EventCalendar renders a single-VEVENT iCalendar document for the event.
func (s *icsService) EventCalendar(event *entity.Event) ([]byte, error) {
	if event == nil || !event.HasValidTimes() {
		return nil, domainerrors.ErrInvalidEvent
	}

	cal := ical.NewCalendar()
	cal.SetProductId(s.prodID)
	cal.SetMethod(ical.MethodPublish)

	ve := cal.AddEvent(event.ID.String() + "@companion")
	// DTSTAMP derives from the event itself rather than wall-clock time to
	// keep repeated exports byte-identical.
	ve.SetDtStampTime(event.StartAt.UTC())
	ve.SetStartAt(event.StartAt.UTC())
	ve.SetEndAt(event.EndAt.UTC())
	ve.SetSummary(escapeText(event.Title))
	if event.Venue != "" {
		ve.SetLocation(escapeText(event.Venue))
	}
	if event.Description != "" {
		ve.SetDescription(escapeText(event.Description))
	}

	return []byte(cal.Serialize()), nil
}

// Filename derives a safe download filename for the event's calendar file.
func (s *icsService) Filename(event *entity.Event) string {
	return util.SanitizeFilename(event.Title) + ".ics"
}

// escapeText escapes TEXT property values per RFC 5545 section 3.3.11:
// backslash first, then semicolon, comma and newline.
func escapeText(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, ";", `\;`)
	value = strings.ReplaceAll(value, ",", `\,`)
	value = strings.ReplaceAll(value, "\r\n", `\n`)
	value = strings.ReplaceAll(value, "\n", `\n`)

	return value
}
