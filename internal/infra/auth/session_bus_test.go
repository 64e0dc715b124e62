package auth

import (
	"io"
	"log/slog"
	"testing"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *sessionBus {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionBus(logger).(*sessionBus)
}

func TestSessionBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := newTestBus()

	first, cancelFirst := bus.Subscribe()
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe()
	defer cancelSecond()

	event := entity.SessionEvent{Type: entity.SessionSignedIn, UserID: uuid.New()}
	bus.Publish(event)

	assert.Equal(t, event, <-first)
	assert.Equal(t, event, <-second)
}

func TestSessionBus_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	bus := newTestBus()

	bus.Publish(entity.SessionEvent{Type: entity.SessionSignedOut, UserID: uuid.New()})
}

func TestSessionBus_SlowSubscriberDropsEvents(t *testing.T) {
	bus := newTestBus()

	events, cancel := bus.Subscribe()
	defer cancel()

	// Overflow the buffer; the publisher must never block.
	for i := 0; i < sessionBusBuffer+4; i++ {
		bus.Publish(entity.SessionEvent{Type: entity.SessionSignedIn, UserID: uuid.New()})
	}

	received := 0
	for len(events) > 0 {
		<-events
		received++
	}

	assert.Equal(t, sessionBusBuffer, received)
}

func TestSessionBus_CancelClosesChannel(t *testing.T) {
	bus := newTestBus()

	events, cancel := bus.Subscribe()
	cancel()

	_, open := <-events
	require.False(t, open)

	// Publishing after cancel must not panic on the closed channel.
	bus.Publish(entity.SessionEvent{Type: entity.SessionSignedOut, UserID: uuid.New()})
}
