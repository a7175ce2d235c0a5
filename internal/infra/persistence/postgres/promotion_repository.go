package postgres

import (
	"context"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

func (repo *promotionRepository) ListActive(ctx context.Context, at time.Time) ([]*entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", at).
		Where("ends_at IS NULL OR ends_at >= ?", at).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&promotionModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list active promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, m := range promotionModels {
		promotions = append(promotions, toPromotionDomain(m))
	}

	return promotions, nil
}

func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := &model.PromotionModel{
		ID:           promotion.ID,
		Title:        promotion.Title,
		Description:  promotion.Description,
		ImageURL:     promotion.ImageURL,
		LinkURL:      promotion.LinkURL,
		StartsAt:     promotion.StartsAt,
		EndsAt:       promotion.EndsAt,
		IsActive:     promotion.IsActive,
		DisplayOrder: promotion.DisplayOrder,
	}

	// Select forces is_active=false to be written instead of the column default.
	if err := repo.db.WithContext(ctx).Select("*").Create(promotionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	promotion.ID = promotionM.ID
	promotion.CreatedAt = promotionM.CreatedAt

	return nil
}

func (repo *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PromotionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

func toPromotionDomain(m *model.PromotionModel) *entity.Promotion {
	return &entity.Promotion{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		LinkURL:      m.LinkURL,
		StartsAt:     m.StartsAt,
		EndsAt:       m.EndsAt,
		IsActive:     m.IsActive,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
	}
}
