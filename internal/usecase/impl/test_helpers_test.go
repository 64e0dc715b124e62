package impl

import (
	"io"
	"log/slog"
	"time"

	"companion/config"
	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newScheduleTestConfig(days ...string) *config.Config {
	cfg := &config.Config{}
	cfg.Schedule = &config.ScheduleConfig{
		Timezone: "UTC",
		Days:     days,
	}

	return cfg
}

func newTestEvent(title string, startAt time.Time, duration time.Duration) *entity.Event {
	return &entity.Event{
		ID:      uuid.New(),
		Title:   title,
		StartAt: startAt,
		EndAt:   startAt.Add(duration),
		Track:   "talks",
		Venue:   "Grand Hall",
	}
}
