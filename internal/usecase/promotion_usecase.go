package usecase

import (
	"context"
	"time"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// PromotionInput creates a banner
type PromotionInput struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"max=1000"`
	ImageURL     string     `json:"image_url" validate:"omitempty,url"`
	LinkURL      string     `json:"link_url" validate:"omitempty,url"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
	IsActive     *bool      `json:"is_active"`
	DisplayOrder int        `json:"display_order"`
}

// PromotionUsecase manages the rotating home page banners
type PromotionUsecase interface {
	// ListActive returns the promotions running now, in display order
	ListActive(ctx context.Context) ([]*entity.Promotion, error)

	// Current returns the banner on display
	Current() *entity.Promotion

	// Rotate advances to the next banner
	Rotate()

	// Refresh reloads the running promotions
	Refresh(ctx context.Context) error

	Create(ctx context.Context, input *PromotionInput) (*entity.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
