package impl

import (
	"context"
	"testing"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	mockRepo "directorio/internal/mocks/repository"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type promotionServiceFixtures struct {
	service       *promotionService
	promotionRepo *mockRepo.MockPromotionRepository
	now           time.Time
}

func createTestPromotionService(t *testing.T) promotionServiceFixtures {
	promotionRepo := mockRepo.NewMockPromotionRepository(t)
	now := time.Date(2024, time.December, 7, 12, 0, 0, 0, time.UTC)

	service := NewPromotionService(PromotionServiceParams{
		PromotionRepo: promotionRepo,
		Logger:        discardLogger(),
	}).(*promotionService)
	service.now = func() time.Time { return now }

	return promotionServiceFixtures{
		service:       service,
		promotionRepo: promotionRepo,
		now:           now,
	}
}

func promotion(title string, order int) *entity.Promotion {
	return &entity.Promotion{ID: uuid.New(), Title: title, IsActive: true, DisplayOrder: order}
}

func TestPromotionService_ListActive(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	ended := fx.now.Add(-time.Hour)

	second := promotion("Feria de las Flores", 2)
	first := promotion("Mercado campesino", 1)
	expired := promotion("Novena", 0)
	expired.EndsAt = &ended
	inactive := promotion("Borrador", 0)
	inactive.IsActive = false

	fx.promotionRepo.EXPECT().
		ListActive(ctx, fx.now).
		Return([]*entity.Promotion{second, expired, first, inactive}, nil)

	running, err := fx.service.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Promotion{first, second}, running)
}

func TestPromotionService_CurrentDefaultsToWelcome(t *testing.T) {
	fx := createTestPromotionService(t)

	current := fx.service.Current()
	assert.Equal(t, "¡Bienvenido al Directorio Local!", current.Title)

	fx.service.Rotate()
	assert.Equal(t, "¡Bienvenido al Directorio Local!", fx.service.Current().Title)
}

func TestPromotionService_RotateWrapsAround(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	a, b, c := promotion("A", 1), promotion("B", 2), promotion("C", 3)

	fx.promotionRepo.EXPECT().ListActive(ctx, fx.now).Return([]*entity.Promotion{a, b, c}, nil).Once()

	require.NoError(t, fx.service.Refresh(ctx))

	seen := []string{fx.service.Current().Title}
	for range 3 {
		fx.service.Rotate()
		seen = append(seen, fx.service.Current().Title)
	}
	assert.Equal(t, []string{"A", "B", "C", "A"}, seen)

	// B is on display; a refresh that keeps it keeps the position.
	fx.service.Rotate()
	fx.promotionRepo.EXPECT().ListActive(ctx, fx.now).Return([]*entity.Promotion{b, c}, nil).Once()

	require.NoError(t, fx.service.Refresh(ctx))
	assert.Equal(t, "B", fx.service.Current().Title)
}

func TestPromotionService_RefreshFailureKeepsRotation(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	fx.promotionRepo.EXPECT().ListActive(ctx, fx.now).Return([]*entity.Promotion{promotion("A", 1)}, nil).Once()
	require.NoError(t, fx.service.Refresh(ctx))

	fx.promotionRepo.EXPECT().ListActive(ctx, fx.now).Return(nil, errors.New("timeout")).Once()
	require.Error(t, fx.service.Refresh(ctx))
	assert.Equal(t, "A", fx.service.Current().Title)
}

func TestPromotionService_Create(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	inactive := false

	fx.promotionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Promotion) bool {
			return p.Title == "Festival" && !p.IsActive && p.DisplayOrder == 3
		})).
		Return(nil)
	fx.promotionRepo.EXPECT().ListActive(ctx, fx.now).Return([]*entity.Promotion{}, nil)

	created, err := fx.service.Create(ctx, &usecase.PromotionInput{Title: " Festival ", IsActive: &inactive, DisplayOrder: 3})
	require.NoError(t, err)
	assert.Equal(t, "Festival", created.Title)
}

func TestPromotionService_Create_Invalid(t *testing.T) {
	fx := createTestPromotionService(t)
	start := fx.now
	end := fx.now.Add(-time.Hour)

	tests := []struct {
		name  string
		input *usecase.PromotionInput
	}{
		{name: "missing title", input: &usecase.PromotionInput{}},
		{name: "bad link", input: &usecase.PromotionInput{Title: "X", LinkURL: "no es url"}},
		{name: "ends before start", input: &usecase.PromotionInput{Title: "X", StartsAt: &start, EndsAt: &end}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Create(context.Background(), tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPromotionService_Delete(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	id := uuid.New()
	missing := uuid.New()

	fx.promotionRepo.EXPECT().Delete(ctx, id).Return(nil)
	fx.promotionRepo.EXPECT().Delete(ctx, missing).Return(repository.ErrPromotionNotFound)
	fx.promotionRepo.EXPECT().ListActive(ctx, fx.now).Return([]*entity.Promotion{}, nil)

	require.NoError(t, fx.service.Delete(ctx, id))
	require.ErrorIs(t, fx.service.Delete(ctx, missing), domainerrors.ErrPromotionNotFound)
}
