package postgres

import (
	"context"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (repo *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	submissionM := &model.SubmissionModel{
		ID:             submission.ID,
		BusinessID:     submission.BusinessID,
		SpecialRequest: submission.SpecialRequest,
		ContactName:    submission.ContactName,
		ContactEmail:   submission.ContactEmail,
	}

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	submission.ID = submissionM.ID
	submission.CreatedAt = submissionM.CreatedAt

	return nil
}

func (repo *submissionRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*entity.Submission, error) {
	var submissionM model.SubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find submission")
	}

	return &entity.Submission{
		ID:             submissionM.ID,
		BusinessID:     submissionM.BusinessID,
		SpecialRequest: submissionM.SpecialRequest,
		ContactName:    submissionM.ContactName,
		ContactEmail:   submissionM.ContactEmail,
		CreatedAt:      submissionM.CreatedAt,
	}, nil
}
