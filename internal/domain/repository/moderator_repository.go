package repository

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for moderator persistence.
var (
	ErrModeratorNotFound  = errors.New("moderator not found")
	ErrDuplicateModerator = errors.New("moderator already exists")
)

// ModeratorRepository stores moderator accounts.
type ModeratorRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Moderator, error)

	Create(ctx context.Context, moderator *entity.Moderator) error
}
