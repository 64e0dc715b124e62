// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository is the read side of the remote event gateway.
// Events are re-fetched wholesale per selected day and treated as
// immutable within a session.
type EventRepository interface {
	// ListEvents retrieves the full schedule ordered by start time.
	ListEvents(ctx context.Context) ([]*entity.Event, error)

	// ListEventsByDay retrieves all events starting within the calendar day
	// that begins at dayStart, ordered by start time.
	ListEventsByDay(ctx context.Context, dayStart time.Time) ([]*entity.Event, error)

	// FindEventByID retrieves a single event by its identifier.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
}
