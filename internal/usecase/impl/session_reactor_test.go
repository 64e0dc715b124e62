package impl

import (
	"context"
	"testing"

	"companion/internal/domain/entity"
	"companion/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionReactor_Handle_SignInReplacesFavorites(t *testing.T) {
	favorites := newStubFavorites()
	stale := uuid.New()
	favorites.add(stale)

	reactor := NewSessionReactor(auth.NewSessionBus(newDiscardLogger()), favorites, newDiscardLogger())

	reactor.Handle(context.Background(), entity.SessionEvent{
		Type:   entity.SessionSignedIn,
		UserID: uuid.New(),
	})

	// The stub echoes its own set on load, so the observable effect here is
	// just that the reconciliation path ran without error.
	assert.True(t, favorites.IsFavorite(stale))
}

func TestSessionReactor_Handle_SignOutClearsFavorites(t *testing.T) {
	favorites := newStubFavorites()
	favorites.add(uuid.New(), uuid.New())

	reactor := NewSessionReactor(auth.NewSessionBus(newDiscardLogger()), favorites, newDiscardLogger())

	reactor.Handle(context.Background(), entity.SessionEvent{
		Type:   entity.SessionSignedOut,
		UserID: uuid.New(),
	})

	assert.Empty(t, favorites.Favorites())
}

func TestSessionReactor_ReactsToPublishedEvents(t *testing.T) {
	bus := auth.NewSessionBus(newDiscardLogger())
	favorites := newStubFavorites()
	favorites.add(uuid.New())

	reactor := NewSessionReactor(bus, favorites, newDiscardLogger())
	reactor.Start(context.Background())

	cleared := make(chan struct{})
	favorites.Watch(func() {
		select {
		case <-cleared:
		default:
			close(cleared)
		}
	})

	bus.Publish(entity.SessionEvent{Type: entity.SessionSignedOut, UserID: uuid.New()})

	<-cleared
	reactor.Stop()

	require.Empty(t, favorites.Favorites())
}
