package postgres

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the domain.EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// ListEvents retrieves the full schedule ordered by start time.
func (repo *eventRepository) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	var eventsM []*model.EventModel
	if err := repo.db.WithContext(ctx).
		Order("start_at ASC").
		Find(&eventsM).Error; err != nil {
		return nil, domainerrors.NewGatewayExecuteError(err, "failed to list events")
	}

	return toEventDomainSlice(eventsM), nil
}

// ListEventsByDay retrieves events starting within one calendar day.
func (repo *eventRepository) ListEventsByDay(ctx context.Context, dayStart time.Time) ([]*entity.Event, error) {
	dayEnd := dayStart.Add(24 * time.Hour)

	var eventsM []*model.EventModel
	if err := repo.db.WithContext(ctx).
		Where("start_at >= ? AND start_at < ?", dayStart, dayEnd).
		Order("start_at ASC").
		Find(&eventsM).Error; err != nil {
		return nil, domainerrors.NewGatewayExecuteError(err, "failed to list events by day")
	}

	return toEventDomainSlice(eventsM), nil
}

// FindEventByID retrieves a single event by its identifier.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, domainerrors.NewGatewayExecuteError(err, "failed to find event by id")
	}

	return toEventDomain(&eventM), nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Title:       data.Title,
		StartAt:     data.StartAt,
		EndAt:       data.EndAt,
		Track:       data.Track,
		Venue:       data.Venue,
		Description: data.Description,
		SpeakerIDs:  data.SpeakerIDs,
	}
}

func toEventDomainSlice(data []*model.EventModel) []*entity.Event {
	events := make([]*entity.Event, 0, len(data))
	for _, eventM := range data {
		events = append(events, toEventDomain(eventM))
	}

	return events
}
