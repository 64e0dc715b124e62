package calendar

import (
	"strings"
	"testing"
	"time"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarEvent() *entity.Event {
	return &entity.Event{
		ID:      uuid.MustParse("0195c3a1-0000-7000-8000-000000000001"),
		Title:   "Opening Keynote",
		StartAt: time.Date(2026, 4, 18, 9, 0, 0, 0, time.FixedZone("ULAT", 8*3600)),
		EndAt:   time.Date(2026, 4, 18, 9, 45, 0, 0, time.FixedZone("ULAT", 8*3600)),
		Venue:   "Grand Hall",
	}
}

func TestICSService_EventCalendar_RendersSingleEvent(t *testing.T) {
	svc := NewICSService()

	content, err := svc.EventCalendar(newCalendarEvent())
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "BEGIN:VEVENT")
	assert.Contains(t, text, "UID:0195c3a1-0000-7000-8000-000000000001@companion")
	assert.Contains(t, text, "SUMMARY:Opening Keynote")
	assert.Contains(t, text, "LOCATION:Grand Hall")
	assert.Equal(t, 1, strings.Count(text, "BEGIN:VEVENT"))
}

func TestICSService_EventCalendar_TimestampsInUTCBasicFormat(t *testing.T) {
	svc := NewICSService()

	content, err := svc.EventCalendar(newCalendarEvent())
	require.NoError(t, err)

	// 09:00 at UTC+8 is 01:00 UTC.
	text := string(content)
	assert.Contains(t, text, "DTSTART:20260418T010000Z")
	assert.Contains(t, text, "DTEND:20260418T014500Z")
	assert.NotContains(t, text, "TZID")
}

func TestICSService_EventCalendar_Idempotent(t *testing.T) {
	svc := NewICSService()
	event := newCalendarEvent()

	first, err := svc.EventCalendar(event)
	require.NoError(t, err)
	second, err := svc.EventCalendar(event)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestICSService_EventCalendar_EscapesText(t *testing.T) {
	svc := NewICSService()

	event := newCalendarEvent()
	event.Title = `Breaks; coffee, tea`
	event.Description = "line one\nline two \\ done"

	content, err := svc.EventCalendar(event)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, `SUMMARY:Breaks\; coffee\, tea`)
	assert.Contains(t, text, `line one\nline two \\ done`)
}

func TestICSService_EventCalendar_RejectsInvalidTimes(t *testing.T) {
	svc := NewICSService()

	_, err := svc.EventCalendar(nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEvent)

	event := newCalendarEvent()
	event.EndAt = event.StartAt.Add(-time.Minute)
	_, err = svc.EventCalendar(event)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEvent)

	event = newCalendarEvent()
	event.StartAt = time.Time{}
	_, err = svc.EventCalendar(event)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEvent)
}

func TestICSService_Filename(t *testing.T) {
	svc := NewICSService()

	event := newCalendarEvent()
	assert.Equal(t, "opening_keynote.ics", svc.Filename(event))

	event.Title = "  Go / in : production!  "
	assert.Equal(t, "go_in_production.ics", svc.Filename(event))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `a\\b\;c\,d\ne`, escapeText("a\\b;c,d\ne"))
	assert.Equal(t, `one\ntwo`, escapeText("one\r\ntwo"))
	assert.Equal(t, "plain", escapeText("plain"))
}
