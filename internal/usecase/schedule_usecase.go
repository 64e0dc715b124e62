package usecase

import (
	"context"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleQuery narrows a schedule listing. Zero values mean "no filter".
type ScheduleQuery struct {
	Day   string `json:"day"`   // Calendar day in 2006-01-02 form.
	Track string `json:"track"` // Track identifier.
	Text  string `json:"text"`  // Case-insensitive title substring.
}

// ScheduleUsecase serves the conference schedule and static reference data.
type ScheduleUsecase interface {
	// LoadDay fetches the schedule for a calendar day from the gateway and
	// makes it the current cached day.
	LoadDay(ctx context.Context, day string) ([]*entity.Event, error)

	// Search filters the cached day (or the requested day) by track and text.
	Search(ctx context.Context, query ScheduleQuery) ([]*entity.Event, error)

	// FindEvent retrieves a single event by id.
	FindEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// Current returns the cached schedule snapshot without a remote call.
	Current() []*entity.Event

	// Tracks returns the static track table.
	Tracks() []entity.Track

	// Speakers returns the static speaker directory.
	Speakers() []entity.Speaker

	// Watch registers a callback invoked whenever the cached schedule
	// changes. Used by the reminder scheduler to re-derive its timers.
	Watch(fn func())
}
