package impl

import (
	"context"
	"log/slog"
	"sync"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"
	"companion/internal/usecase"
)

// SessionReactor drives favorites reconciliation off the session bus: a
// completed sign-in replaces the local favorite set with the gateway's, a
// sign-out empties it. The reminder scheduler follows automatically through
// its favorites watcher.
type SessionReactor struct {
	bus       service.SessionBus
	favorites usecase.FavoritesUsecase
	logger    *slog.Logger

	cancel  func()
	stopped chan struct{}
	once    sync.Once
}

// NewSessionReactor is the constructor for SessionReactor.
func NewSessionReactor(
	bus service.SessionBus,
	favorites usecase.FavoritesUsecase,
	logger *slog.Logger,
) *SessionReactor {
	return &SessionReactor{
		bus:       bus,
		favorites: favorites,
		logger:    logger,
		stopped:   make(chan struct{}),
	}
}

// Start subscribes to the session bus and reacts until Stop is called.
func (r *SessionReactor) Start(ctx context.Context) {
	events, cancel := r.bus.Subscribe()
	r.cancel = cancel

	go func() {
		defer close(r.stopped)
		for event := range events {
			r.Handle(ctx, event)
		}
	}()
}

// Stop cancels the subscription and waits for the reactor loop to drain.
func (r *SessionReactor) Stop() {
	r.once.Do(func() {
		if r.cancel == nil {
			return
		}
		r.cancel()
		<-r.stopped
	})
}

// Handle applies one session transition to the local favorite set.
func (r *SessionReactor) Handle(ctx context.Context, event entity.SessionEvent) {
	switch event.Type {
	case entity.SessionSignedIn:
		if _, err := r.favorites.LoadFavorites(ctx, event.UserID); err != nil {
			r.logger.Error("Failed to reconcile favorites after sign-in",
				slog.Any("error", err),
				slog.Any("user_id", event.UserID),
			)
		}
	case entity.SessionSignedOut:
		r.favorites.Clear()
	}
}
