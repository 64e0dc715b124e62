// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a single item on the conference schedule.
// Events are owned by the remote gateway and are immutable from the
// client's point of view within a session.
type Event struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the event.
	Title       string    `json:"title"`       // Display title of the event.
	StartAt     time.Time `json:"start_at"`    // When the event starts.
	EndAt       time.Time `json:"end_at"`      // When the event ends. Always after StartAt.
	Track       string    `json:"track"`       // Track identifier. May be unknown to the static track table.
	Venue       string    `json:"venue"`       // Venue label, free text.
	Description string    `json:"description"` // Free-text description.
	SpeakerIDs  []string  `json:"speaker_ids"` // Ordered speaker identifiers. May be empty.
}

// HasValidTimes reports whether the event carries a usable start/end pair.
func (e *Event) HasValidTimes() bool {
	return !e.StartAt.IsZero() && !e.EndAt.IsZero() && e.EndAt.After(e.StartAt)
}

// Day returns the UTC calendar day the event starts on, formatted as 2006-01-02.
func (e *Event) Day() string {
	return e.StartAt.UTC().Format("2006-01-02")
}
