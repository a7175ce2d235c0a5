package repository

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmissionRepository stores who proposed a business.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error

	// FindByBusinessID returns nil without error when the business has no submission row.
	FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*entity.Submission, error)
}
