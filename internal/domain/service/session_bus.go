package service

import "companion/internal/domain/entity"

// SessionBus fans authentication state transitions out to subscribers.
// Publishing never blocks the auth flow; slow subscribers drop events.
type SessionBus interface {
	// Publish broadcasts a session event to all current subscribers.
	Publish(event entity.SessionEvent)

	// Subscribe registers a new subscriber. The returned cancel function
	// removes the subscription and closes the channel.
	Subscribe() (<-chan entity.SessionEvent, func())
}
