package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"companion/config"
	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scheduleService implements the ScheduleUsecase interface.
//
// It keeps exactly one conference day cached. The cache is the input the
// reminder scheduler derives its timers from, so every cache replacement
// notifies watchers.
type scheduleService struct {
	eventRepo repository.EventRepository
	location  *time.Location
	days      []string
	logger    *slog.Logger

	mu       sync.RWMutex
	current  []*entity.Event
	day      string
	watchers []func()
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(
	eventRepo repository.EventRepository,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.ScheduleUsecase, error) {
	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load timezone %q", cfg.Schedule.Timezone)
	}

	srv := &scheduleService{
		eventRepo: eventRepo,
		location:  location,
		days:      cfg.Schedule.Days,
		logger:    logger,
	}
	if len(srv.days) > 0 {
		srv.day = srv.days[0]
	}

	return srv, nil
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadDay fetches one calendar day from the gateway and makes it the cached
// day. An empty day reloads the currently cached day, which is how the
// periodic refresh job keeps the cache warm.
func (srv *scheduleService) LoadDay(ctx context.Context, day string) ([]*entity.Event, error) {
	if day == "" {
		srv.mu.RLock()
		day = srv.day
		srv.mu.RUnlock()
	}

	dayStart, err := time.ParseInLocation("2006-01-02", day, srv.location)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid day format, want 2006-01-02")
	}

	events, err := srv.eventRepo.ListEventsByDay(ctx, dayStart)
	if err != nil {
		srv.log(ctx).Error("Failed to load schedule day", slog.Any("error", err), slog.String("day", day))

		return nil, errors.Wrap(err, "failed to list events by day")
	}

	// Rows that violate the time invariant are dropped rather than fed to
	// the reminder scheduler.
	valid := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		if !event.HasValidTimes() {
			srv.log(ctx).Warn("Dropping event with invalid time range", slog.Any("event_id", event.ID))

			continue
		}
		valid = append(valid, event)
	}

	srv.mu.Lock()
	srv.current = valid
	srv.day = day
	srv.mu.Unlock()

	srv.notifyWatchers()

	srv.log(ctx).Debug("Schedule day cached", slog.String("day", day), slog.Int("events", len(valid)))

	return valid, nil
}

// Search filters the cached day by track and case-insensitive title text.
// A query naming a different day loads that day first.
func (srv *scheduleService) Search(ctx context.Context, query usecase.ScheduleQuery) ([]*entity.Event, error) {
	srv.mu.RLock()
	cachedDay := srv.day
	srv.mu.RUnlock()

	if query.Day != "" && query.Day != cachedDay {
		if _, err := srv.LoadDay(ctx, query.Day); err != nil {
			return nil, err
		}
	}

	if query.Track != "" {
		if _, ok := entity.TrackByID(query.Track); !ok {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown track: " + query.Track)
		}
	}

	text := strings.ToLower(strings.TrimSpace(query.Text))

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	matched := make([]*entity.Event, 0, len(srv.current))
	for _, event := range srv.current {
		if query.Track != "" && event.Track != query.Track {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(event.Title), text) {
			continue
		}
		matched = append(matched, event)
	}

	return matched, nil
}

// FindEvent retrieves a single event by id, preferring the cache.
func (srv *scheduleService) FindEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	srv.mu.RLock()
	for _, event := range srv.current {
		if event.ID == id {
			srv.mu.RUnlock()

			return event, nil
		}
	}
	srv.mu.RUnlock()

	event, err := srv.eventRepo.FindEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}
		srv.log(ctx).Error("Failed to find event", slog.Any("error", err), slog.Any("event_id", id))

		return nil, errors.Wrap(err, "failed to find event")
	}

	if !event.HasValidTimes() {
		return nil, domainerrors.ErrInvalidEvent
	}

	return event, nil
}

// Current returns the cached schedule snapshot without a remote call.
func (srv *scheduleService) Current() []*entity.Event {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	snapshot := make([]*entity.Event, len(srv.current))
	copy(snapshot, srv.current)

	return snapshot
}

// Tracks returns the static track table.
func (srv *scheduleService) Tracks() []entity.Track {
	return entity.Tracks
}

// Speakers returns the static speaker directory.
func (srv *scheduleService) Speakers() []entity.Speaker {
	return entity.Speakers
}

// Watch registers a callback invoked after every cache replacement.
func (srv *scheduleService) Watch(fn func()) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.watchers = append(srv.watchers, fn)
}

func (srv *scheduleService) notifyWatchers() {
	srv.mu.RLock()
	watchers := make([]func(), len(srv.watchers))
	copy(watchers, srv.watchers)
	srv.mu.RUnlock()

	for _, fn := range watchers {
		fn()
	}
}
