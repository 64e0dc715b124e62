package auth

import (
	"log/slog"
	"sync"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"
)

const sessionBusBuffer = 8

// sessionBus is an in-process fan-out implementation of the SessionBus
// interface. Publishing never blocks the auth flow: a subscriber whose
// buffer is full simply misses the event.
type sessionBus struct {
	logger *slog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]chan entity.SessionEvent
}

// NewSessionBus is the constructor for sessionBus.
func NewSessionBus(logger *slog.Logger) service.SessionBus {
	return &sessionBus{
		logger: logger,
		subs:   make(map[int]chan entity.SessionEvent),
	}
}

// Publish broadcasts a session event to all current subscribers.
func (b *sessionBus) Publish(event entity.SessionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("Session event dropped for slow subscriber",
				slog.Int("subscriber", id),
				slog.String("type", string(event.Type)),
			)
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel function removes
// the subscription and closes the channel.
func (b *sessionBus) Subscribe() (<-chan entity.SessionEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan entity.SessionEvent, sessionBusBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}
