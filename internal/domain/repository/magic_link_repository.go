package repository

import (
	"context"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

// ErrMagicLinkNotFound is returned when a magic link is not found or already consumed.
var ErrMagicLinkNotFound = errors.New("magic link not found")

// MagicLinkRepository defines the interface for passwordless sign-in token persistence.
type MagicLinkRepository interface {
	// CreateMagicLink persists a newly issued magic link.
	CreateMagicLink(ctx context.Context, link *entity.MagicLink) error

	// FindMagicLinkByID retrieves a magic link by its identifier.
	FindMagicLinkByID(ctx context.Context, id uuid.UUID) (*entity.MagicLink, error)

	// ConsumeMagicLink marks a link as used. Consuming an unknown or already
	// consumed link returns ErrMagicLinkNotFound, which makes the links
	// single-use even under concurrent verification attempts.
	ConsumeMagicLink(ctx context.Context, id uuid.UUID) error
}
