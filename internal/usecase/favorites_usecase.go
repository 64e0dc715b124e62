package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FavoritesUsecase is the favorites reconciliation engine: it owns the local
// favorite set and keeps it consistent with the remote gateway's
// authoritative copy.
//
// Invariant: while a user is signed in the local set only ever reflects
// gateway-confirmed state; with no user signed in the set is empty and
// mutations are rejected with an Unauthenticated error.
type FavoritesUsecase interface {
	// LoadFavorites replaces the local set wholesale with the gateway's
	// authoritative set for the user. Called on every sign-in transition.
	LoadFavorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ToggleFavorite flips membership for the event, mirroring the change to
	// the gateway before the local set is mutated. Returns the confirmed new
	// membership. Toggles on the same event id are serialized; a second
	// toggle waits for the in-flight one rather than racing it.
	ToggleFavorite(ctx context.Context, userID, eventID uuid.UUID) (favorited bool, err error)

	// Favorites returns a snapshot of the current favorite event ids.
	Favorites() []uuid.UUID

	// IsFavorite reports membership for one event id.
	IsFavorite(eventID uuid.UUID) bool

	// Clear empties the local set without a remote call. Called on sign-out.
	Clear()

	// Watch registers a callback invoked after every confirmed change to the
	// set (load, toggle, clear). Used by the reminder scheduler to re-derive
	// its timers.
	Watch(fn func())
}
