package postgres

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// magicLinkRepository implements the domain.MagicLinkRepository interface using GORM.
type magicLinkRepository struct {
	db *gorm.DB
}

// NewMagicLinkRepository is the constructor for magicLinkRepository.
func NewMagicLinkRepository(db *gorm.DB) repository.MagicLinkRepository {
	return &magicLinkRepository{db: db}
}

// CreateMagicLink persists a newly issued magic link.
func (repo *magicLinkRepository) CreateMagicLink(ctx context.Context, link *entity.MagicLink) error {
	linkM := fromMagicLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required magic link information")
		}

		return domainerrors.NewGatewayExecuteError(err, "failed to create magic link")
	}

	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindMagicLinkByID retrieves a magic link by its identifier.
func (repo *magicLinkRepository) FindMagicLinkByID(ctx context.Context, id uuid.UUID) (*entity.MagicLink, error) {
	var linkM model.MagicLinkModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMagicLinkNotFound
		}

		return nil, domainerrors.NewGatewayExecuteError(err, "failed to find magic link by id")
	}

	return toMagicLinkDomain(&linkM), nil
}

// ConsumeMagicLink marks a link as used. The conditional update keeps links
// single-use even when two verification attempts race.
func (repo *magicLinkRepository) ConsumeMagicLink(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MagicLinkModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewGatewayExecuteError(result.Error, "failed to consume magic link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMagicLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMagicLinkDomain converts a GORM MagicLinkModel to a domain MagicLink entity.
func toMagicLinkDomain(data *model.MagicLinkModel) *entity.MagicLink {
	if data == nil {
		return nil
	}

	return &entity.MagicLink{
		ID:         data.ID,
		Email:      data.Email,
		SecretHash: data.SecretHash,
		ExpiresAt:  data.ExpiresAt,
		ConsumedAt: data.ConsumedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromMagicLinkDomain converts a domain MagicLink entity to a GORM MagicLinkModel.
func fromMagicLinkDomain(data *entity.MagicLink) *model.MagicLinkModel {
	if data == nil {
		return nil
	}

	return &model.MagicLinkModel{
		ID:         data.ID,
		Email:      data.Email,
		SecretHash: data.SecretHash,
		ExpiresAt:  data.ExpiresAt,
		ConsumedAt: data.ConsumedAt,
	}
}
