package postgres

import (
	"context"
	"strings"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type moderatorRepository struct {
	db *gorm.DB
}

// NewModeratorRepository is the constructor for moderatorRepository.
func NewModeratorRepository(db *gorm.DB) repository.ModeratorRepository {
	return &moderatorRepository{db: db}
}

func (repo *moderatorRepository) FindByEmail(ctx context.Context, email string) (*entity.Moderator, error) {
	var moderatorM model.ModeratorModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&moderatorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModeratorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find moderator")
	}

	return &entity.Moderator{
		ID:           moderatorM.ID,
		Email:        moderatorM.Email,
		Name:         moderatorM.Name,
		PasswordHash: moderatorM.PasswordHash,
		CreatedAt:    moderatorM.CreatedAt,
	}, nil
}

func (repo *moderatorRepository) Create(ctx context.Context, moderator *entity.Moderator) error {
	moderatorM := &model.ModeratorModel{
		ID:           moderator.ID,
		Email:        normalizeEmail(moderator.Email),
		Name:         moderator.Name,
		PasswordHash: moderator.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(moderatorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateModerator
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create moderator")
	}

	moderator.ID = moderatorM.ID
	moderator.Email = moderatorM.Email
	moderator.CreatedAt = moderatorM.CreatedAt

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
