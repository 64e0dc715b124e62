package repository

import (
	"context"

	"companion/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when removing a favorite that does not exist.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when adding a favorite that already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository is the mutation side of the remote favorite gateway.
// The server-side favorite set is the authoritative source once a user is
// signed in; local state only ever reflects confirmed outcomes.
type FavoriteRepository interface {
	// ListFavoriteIDs retrieves the authoritative favorite event ids for a user.
	ListFavoriteIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// AddFavorite records a favorite for the user.
	AddFavorite(ctx context.Context, userID, eventID uuid.UUID) error

	// RemoveFavorite deletes a favorite for the user.
	RemoveFavorite(ctx context.Context, userID, eventID uuid.UUID) error
}
