package impl

import (
	"context"
	"fmt"
	"log/slog"

	"directorio/config"
	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultDetailZoom = 16

type mapService struct {
	businessRepo repository.BusinessRepository
	tiles        service.TileService
	renderer     service.PlaceholderRenderer
	detailZoom   maptile.Zoom
	logger       *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Tiles        service.TileService `optional:"true"`
	Renderer     service.PlaceholderRenderer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMapService creates the map usecase. Tiles stay disabled when no tile service is provided.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	zoom := defaultDetailZoom
	if cfg := params.Config.PMTiles; cfg != nil && cfg.DetailZoom > 0 {
		zoom = cfg.DetailZoom
	}

	return &mapService{
		businessRepo: params.BusinessRepo,
		tiles:        params.Tiles,
		renderer:     params.Renderer,
		detailZoom:   maptile.Zoom(min(zoom, 22)),
		logger:       params.Logger,
	}
}

func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Tile returns one basemap tile.
func (srv *mapService) Tile(ctx context.Context, z uint8, x, y uint32) (*service.Tile, error) {
	if srv.tiles == nil {
		return nil, errors.WithStack(domainerrors.ErrTilesDisabled)
	}

	tile, err := srv.tiles.Tile(ctx, z, x, y)
	if err != nil {
		srv.log(ctx).Error("Failed to read tile",
			slog.Int("z", int(z)), slog.Uint64("x", uint64(x)), slog.Uint64("y", uint64(y)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to read tile")
	}
	if tile == nil {
		return nil, errors.WithStack(domainerrors.ErrTileNotFound)
	}

	return tile, nil
}

// BusinessTile locates the detail tile that contains an approved business.
func (srv *mapService) BusinessTile(ctx context.Context, id uuid.UUID) (*usecase.TileRef, error) {
	if srv.tiles == nil {
		return nil, errors.WithStack(domainerrors.ErrTilesDisabled)
	}

	business, err := srv.businessRepo.FindApprovedByID(ctx, id)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.WithStack(domainerrors.ErrBusinessNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}

	t := maptile.At(orb.Point{business.Longitude, business.Latitude}, srv.detailZoom)

	return &usecase.TileRef{
		Z:   uint32(t.Z),
		X:   t.X,
		Y:   t.Y,
		URL: fmt.Sprintf("/api/v1/tiles/%d/%d/%d.mvt", t.Z, t.X, t.Y),
	}, nil
}

// Placeholder renders the default image of a category.
func (srv *mapService) Placeholder(category entity.Category) ([]byte, error) {
	if !category.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrUnknownCategory.WithDetails(string(category)))
	}

	png, err := srv.renderer.Render(category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render placeholder")
	}

	return png, nil
}
