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

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if inquiry.Status == "" {
		inquiry.Status = entity.InquiryStatusPending
	}
	inquiryM := &model.InquiryModel{
		ID:      inquiry.ID,
		Message: inquiry.Message,
		Contact: inquiry.Contact,
		Status:  string(inquiry.Status),
	}

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	inquiry.ID = inquiryM.ID
	inquiry.CreatedAt = inquiryM.CreatedAt

	return nil
}

func (repo *inquiryRepository) List(ctx context.Context, status entity.InquiryStatus, page repository.Page) ([]*entity.Inquiry, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var inquiryModels []*model.InquiryModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&inquiryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list inquiries")
	}

	inquiries := make([]*entity.Inquiry, 0, len(inquiryModels))
	for _, m := range inquiryModels {
		inquiries = append(inquiries, &entity.Inquiry{
			ID:        m.ID,
			Message:   m.Message,
			Contact:   m.Contact,
			Status:    entity.InquiryStatus(m.Status),
			CreatedAt: m.CreatedAt,
			HandledAt: m.HandledAt,
		})
	}

	return inquiries, nil
}

func (repo *inquiryRepository) MarkHandled(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(entity.InquiryStatusHandled), "handled_at": time.Now()})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark inquiry handled")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInquiryNotFound
	}

	return nil
}
