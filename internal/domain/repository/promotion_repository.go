package repository

import (
	"context"
	"time"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPromotionNotFound is returned when no promotion has the given ID.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository stores the home page banners.
type PromotionRepository interface {
	// ListActive returns active promotions running at t, ordered by display order.
	ListActive(ctx context.Context, at time.Time) ([]*entity.Promotion, error)

	Create(ctx context.Context, promotion *entity.Promotion) error

	Delete(ctx context.Context, id uuid.UUID) error
}
