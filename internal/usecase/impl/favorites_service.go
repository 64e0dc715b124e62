// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "companion/internal/delivery/context"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoritesService implements the FavoritesUsecase interface.
//
// It is the only component that mutates the local favorite set. The set only
// ever reflects gateway-confirmed state: a toggle mirrors the change to the
// gateway first and mutates locally only after confirmation, so a failed
// remote call can never leave an optimistic value behind.
type favoritesService struct {
	favoriteRepo repository.FavoriteRepository
	localState   service.LocalStateStore
	toaster      service.Toaster
	logger       *slog.Logger

	mu       sync.Mutex
	set      map[uuid.UUID]struct{}
	inflight map[uuid.UUID]*toggleLock
	watchers []func()
}

// toggleLock serializes toggles on one event id. holders counts the
// goroutines holding or queued on mu, so the entry can be dropped from the
// inflight map once the last toggle on that id resolves.
type toggleLock struct {
	mu      sync.Mutex
	holders int
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(
	favoriteRepo repository.FavoriteRepository,
	localState service.LocalStateStore,
	toaster service.Toaster,
	logger *slog.Logger,
) usecase.FavoritesUsecase {
	srv := &favoritesService{
		favoriteRepo: favoriteRepo,
		localState:   localState,
		toaster:      toaster,
		logger:       logger,
		set:          make(map[uuid.UUID]struct{}),
		inflight:     make(map[uuid.UUID]*toggleLock),
	}

	// Seed from the pre-auth local cache so the UI shows hearts before the
	// first sign-in; the gateway replaces this wholesale on sign-in.
	var cached []uuid.UUID
	if srv.localState.Load(service.StateKeyFavorites, &cached) {
		for _, id := range cached {
			srv.set[id] = struct{}{}
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoritesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadFavorites replaces the local set wholesale with the gateway's authoritative set.
func (srv *favoritesService) LoadFavorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	ids, err := srv.favoriteRepo.ListFavoriteIDs(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load favorites", slog.Any("error", err), slog.Any("user_id", userID))
		srv.toaster.Push("錯誤", "載入收藏的活動失敗")

		return nil, errors.Wrap(err, "failed to list favorite ids")
	}

	srv.mu.Lock()
	srv.set = make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		srv.set[id] = struct{}{}
	}
	srv.mu.Unlock()

	srv.persist()
	srv.notifyWatchers()

	srv.log(ctx).Debug("Favorites replaced from gateway", slog.Any("user_id", userID), slog.Int("count", len(ids)))

	return ids, nil
}

// ToggleFavorite flips membership for one event, confirmed-state-only.
//
// Toggles on the same event id are serialized through a per-id mutex: a
// second toggle queues behind the in-flight one instead of racing it, so two
// rapid opposite toggles can never leave server and local state disagreeing.
func (srv *favoritesService) ToggleFavorite(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		srv.toaster.Push("需要登入", "請先登入後再收藏活動")

		return false, domainerrors.ErrUnauthenticated
	}

	lock := srv.acquireToggleLock(eventID)
	defer srv.releaseToggleLock(eventID, lock)

	srv.mu.Lock()
	_, wasFavorite := srv.set[eventID]
	srv.mu.Unlock()

	want := !wasFavorite

	if want {
		err := srv.favoriteRepo.AddFavorite(ctx, userID, eventID)
		// The gateway already holding the favorite means a prior toggle was
		// confirmed but never reflected locally; converge on the server state.
		if err != nil && !errors.Is(err, repository.ErrDuplicateFavorite) {
			srv.log(ctx).Error("Failed to add favorite", slog.Any("error", err), slog.Any("event_id", eventID))
			srv.toaster.Push("錯誤", "收藏活動失敗,請稍後再試")

			return wasFavorite, errors.Wrap(err, "failed to add favorite")
		}
	} else {
		err := srv.favoriteRepo.RemoveFavorite(ctx, userID, eventID)
		if err != nil && !errors.Is(err, repository.ErrFavoriteNotFound) {
			srv.log(ctx).Error("Failed to remove favorite", slog.Any("error", err), slog.Any("event_id", eventID))
			srv.toaster.Push("錯誤", "取消收藏失敗,請稍後再試")

			return wasFavorite, errors.Wrap(err, "failed to remove favorite")
		}
	}

	srv.mu.Lock()
	if want {
		srv.set[eventID] = struct{}{}
	} else {
		delete(srv.set, eventID)
	}
	srv.mu.Unlock()

	srv.persist()
	srv.notifyWatchers()

	if want {
		srv.toaster.Push("已收藏", "已將活動加入收藏")
	} else {
		srv.toaster.Push("已取消收藏", "已將活動自收藏移除")
	}

	return want, nil
}

// Favorites returns a snapshot of the current favorite event ids.
func (srv *favoritesService) Favorites() []uuid.UUID {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(srv.set))
	for id := range srv.set {
		ids = append(ids, id)
	}

	return ids
}

// IsFavorite reports membership for one event id.
func (srv *favoritesService) IsFavorite(eventID uuid.UUID) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	_, ok := srv.set[eventID]

	return ok
}

// Clear empties the local set without a remote call.
func (srv *favoritesService) Clear() {
	srv.mu.Lock()
	srv.set = make(map[uuid.UUID]struct{})
	srv.mu.Unlock()

	srv.persist()
	srv.notifyWatchers()
}

// Watch registers a callback invoked after every confirmed change to the set.
func (srv *favoritesService) Watch(fn func()) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.watchers = append(srv.watchers, fn)
}

// acquireToggleLock takes the per-event mutex that serializes toggles on one
// id, registering the caller as a holder first so a concurrent release cannot
// drop the entry out from under it.
func (srv *favoritesService) acquireToggleLock(eventID uuid.UUID) *toggleLock {
	srv.mu.Lock()
	lock, ok := srv.inflight[eventID]
	if !ok {
		lock = &toggleLock{}
		srv.inflight[eventID] = lock
	}
	lock.holders++
	srv.mu.Unlock()

	lock.mu.Lock()

	return lock
}

// releaseToggleLock unlocks the per-event mutex and removes the map entry
// once no other toggle on that id holds or waits on it.
func (srv *favoritesService) releaseToggleLock(eventID uuid.UUID, lock *toggleLock) {
	lock.mu.Unlock()

	srv.mu.Lock()
	lock.holders--
	if lock.holders == 0 {
		delete(srv.inflight, eventID)
	}
	srv.mu.Unlock()
}

func (srv *favoritesService) persist() {
	srv.localState.Store(service.StateKeyFavorites, srv.Favorites())
}

// notifyWatchers runs outside srv.mu so a watcher may read the set back
// without deadlocking.
func (srv *favoritesService) notifyWatchers() {
	srv.mu.Lock()
	watchers := make([]func(), len(srv.watchers))
	copy(watchers, srv.watchers)
	srv.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}
