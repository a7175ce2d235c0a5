package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/validation"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// welcomePromotion is shown while no promotion is running.
var welcomePromotion = entity.Promotion{
	Title:       "¡Bienvenido al Directorio Local!",
	Description: "¿Tienes promociones o noticias importantes? ¡Contáctanos para destacarlas aquí!",
	IsActive:    true,
}

type promotionService struct {
	promotionRepo repository.PromotionRepository
	validator     *validation.Validator
	now           func() time.Time
	logger        *slog.Logger

	mu      sync.RWMutex
	running []*entity.Promotion
	current int
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
	Logger        *slog.Logger
}

// NewPromotionService creates the promotions banner rotator.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo: params.PromotionRepo,
		validator:     validation.New(),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActive returns the promotions running now ordered by display order.
func (srv *promotionService) ListActive(ctx context.Context) ([]*entity.Promotion, error) {
	now := srv.now()

	promotions, err := srv.promotionRepo.ListActive(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active promotions")
	}

	running := make([]*entity.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.RunningAt(now) {
			running = append(running, p)
		}
	}
	slices.SortStableFunc(running, func(a, b *entity.Promotion) int {
		return a.DisplayOrder - b.DisplayOrder
	})

	return running, nil
}

// Current returns the promotion on display, or the welcome banner.
func (srv *promotionService) Current() *entity.Promotion {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if len(srv.running) == 0 {
		welcome := welcomePromotion

		return &welcome
	}

	p := *srv.running[srv.current]

	return &p
}

// Rotate advances to the next promotion, wrapping around.
func (srv *promotionService) Rotate() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if len(srv.running) > 1 {
		srv.current = (srv.current + 1) % len(srv.running)
	}
}

// Refresh reloads the running promotions, keeping the current one on display when it survives.
func (srv *promotionService) Refresh(ctx context.Context) error {
	running, err := srv.ListActive(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh promotions", slog.Any("error", err))

		return err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	var currentID uuid.UUID
	if len(srv.running) > 0 {
		currentID = srv.running[srv.current].ID
	}

	srv.running = running
	srv.current = 0
	for i, p := range running {
		if p.ID == currentID {
			srv.current = i

			break
		}
	}

	return nil
}

// Create stores a promotion and puts it into rotation if it is running.
func (srv *promotionService) Create(ctx context.Context, input *usecase.PromotionInput) (*entity.Promotion, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, errors.WithStack(err)
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "ends_at",
			Message: "La fecha de fin debe ser posterior a la de inicio",
		}))
	}

	promotion := &entity.Promotion{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		LinkURL:      strings.TrimSpace(input.LinkURL),
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		IsActive:     input.IsActive == nil || *input.IsActive,
		DisplayOrder: input.DisplayOrder,
	}
	if err := srv.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, errors.Wrap(err, "failed to create promotion")
	}

	srv.log(ctx).Info("Promotion created", slog.String("promotionID", promotion.ID.String()))
	_ = srv.Refresh(ctx)

	return promotion, nil
}

// Delete removes a promotion.
func (srv *promotionService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.promotionRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPromotionNotFound) {
		return errors.WithStack(domainerrors.ErrPromotionNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete promotion")
	}

	_ = srv.Refresh(ctx)

	return nil
}
