package postgres

import (
	"context"

	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// ListFavoriteIDs retrieves the authoritative favorite event ids for a user.
func (repo *favoriteRepository) ListFavoriteIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("event_id", &ids).Error; err != nil {
		return nil, domainerrors.NewGatewayExecuteError(err, "failed to list favorite ids")
	}

	return ids, nil
}

// AddFavorite records a favorite. The composite primary key turns a repeated
// add into ErrDuplicateFavorite, which callers treat as already confirmed.
func (repo *favoriteRepository) AddFavorite(ctx context.Context, userID, eventID uuid.UUID) error {
	favoriteM := &model.FavoriteModel{UserID: userID, EventID: eventID}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEventNotFound.WrapMessage("favorite references unknown event or user")
		}

		return domainerrors.NewGatewayExecuteError(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite deletes a favorite. Removing an absent favorite returns
// ErrFavoriteNotFound so callers can converge on the server state.
func (repo *favoriteRepository) RemoveFavorite(ctx context.Context, userID, eventID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewGatewayExecuteError(result.Error, "failed to remove favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}
