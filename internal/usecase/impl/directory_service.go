// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"directorio/config"
	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/hours"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxMapFeatures bounds the GeoJSON export.
const maxMapFeatures = 1000

type directoryService struct {
	businessRepo repository.BusinessRepository
	qrCode       service.QRCodeService
	evaluator    *hours.Evaluator
	directory    *config.DirectoryConfig
	logger       *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	QRCode       service.QRCodeService
	Evaluator    *hours.Evaluator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDirectoryService creates the read side of the directory.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		businessRepo: params.BusinessRepo,
		qrCode:       params.QRCode,
		evaluator:    params.Evaluator,
		directory:    params.Config.Directory,
		logger:       params.Logger,
	}
}

// NewHoursEvaluator builds the evaluator for the configured time zone.
func NewHoursEvaluator(cfg *config.Config) (*hours.Evaluator, error) {
	loc, err := cfg.Directory.Location()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load directory time zone")
	}

	return hours.NewEvaluator(loc), nil
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBusinesses returns one page of approved businesses matching state.
func (srv *directoryService) ListBusinesses(ctx context.Context, state filter.State, page repository.Page) (*usecase.BusinessPage, error) {
	page = srv.clampPage(page)

	items, hasMore, err := srv.businessRepo.ListApproved(ctx, state.Criteria(), page)
	if err != nil {
		srv.log(ctx).Error("Failed to list businesses", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrFetchFailed.WithDetails(err.Error()))
	}

	srv.markOpen(ctx, items)
	filter.SortByName(items)

	return &usecase.BusinessPage{
		Items:   items,
		HasMore: hasMore,
		Flags:   filter.Summarize(items),
	}, nil
}

// GetBusiness returns one approved business.
func (srv *directoryService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindApprovedByID(ctx, id)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.WithStack(domainerrors.ErrBusinessNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}

	srv.markOpen(ctx, []*entity.Business{business})

	return business, nil
}

// Nearby returns approved businesses within radiusKm of the point, closest first.
func (srv *directoryService) Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*usecase.NearbyBusiness, error) {
	if radiusKm <= 0 {
		radiusKm = srv.directory.NearbyRadiusKm
	}
	limit = srv.clampPage(repository.Page{Limit: limit}).Limit

	center := orb.Point{lng, lat}
	radius := radiusKm * 1000
	bound := geo.NewBoundAroundPoint(center, radius)

	candidates, err := srv.businessRepo.ListApprovedWithin(ctx, bound, srv.directory.MaxPageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list nearby businesses", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrFetchFailed.WithDetails(err.Error()))
	}

	result := make([]*usecase.NearbyBusiness, 0, len(candidates))
	for _, b := range candidates {
		distance := geo.DistanceHaversine(center, orb.Point{b.Longitude, b.Latitude})
		if distance > radius {
			continue
		}
		result = append(result, &usecase.NearbyBusiness{Business: b, DistanceMeters: distance})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})
	if len(result) > limit {
		result = result[:limit]
	}

	for _, nb := range result {
		srv.markOpen(ctx, []*entity.Business{nb.Business})
	}

	return result, nil
}

// FeatureCollection returns the located businesses matching state as GeoJSON points.
func (srv *directoryService) FeatureCollection(ctx context.Context, state filter.State) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	criteria := state.Criteria()
	page := repository.Page{Limit: srv.directory.MaxPageSize}

	for len(fc.Features) < maxMapFeatures {
		items, hasMore, err := srv.businessRepo.ListApproved(ctx, criteria, page)
		if err != nil {
			srv.log(ctx).Error("Failed to list businesses for map", slog.Any("error", err))

			return nil, errors.WithStack(domainerrors.ErrFetchFailed.WithDetails(err.Error()))
		}

		srv.markOpen(ctx, items)
		for _, b := range items {
			if b.Latitude == 0 && b.Longitude == 0 {
				continue
			}
			fc.Append(businessFeature(b))
		}

		if !hasMore {
			break
		}
		page = page.Next()
	}

	return fc, nil
}

func businessFeature(b *entity.Business) *geojson.Feature {
	r, g, bl := b.Category.Color()

	f := geojson.NewFeature(orb.Point{b.Longitude, b.Latitude})
	f.ID = b.ID.String()
	f.Properties["name"] = b.Name
	f.Properties["category"] = string(b.Category)
	f.Properties["icon"] = b.Category.Icon()
	f.Properties["color"] = fmt.Sprintf("#%02X%02X%02X", r, g, bl)
	f.Properties["address"] = b.Address
	f.Properties["is_open"] = b.IsOpen
	f.Properties["image_url"] = b.DisplayImage()

	return f
}

// ShareCode renders a QR code for the public page of an approved business.
func (srv *directoryService) ShareCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetBusiness(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateBusinessQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

// Catalogue lists every filter option.
func (srv *directoryService) Catalogue() *usecase.Catalogue {
	categories := entity.Categories()
	zones := entity.Zones()

	out := &usecase.Catalogue{
		Categories: make([]usecase.CategoryInfo, 0, len(categories)),
		Zones:      make([]usecase.ZoneInfo, 0, len(zones)),
		PriceTiers: entity.PriceTiers(),
		Ratings:    []int{1, 2, 3, 4, 5},
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, usecase.CategoryInfo{
			Tag:              c,
			Label:            c.Label(),
			Icon:             c.Icon(),
			PlaceholderImage: c.PlaceholderImage(),
		})
	}
	for _, z := range zones {
		out.Zones = append(out.Zones, usecase.ZoneInfo{Tag: z, Label: z.Label()})
	}

	return out
}

// markOpen evaluates each business's hours. A malformed descriptor counts as closed.
func (srv *directoryService) markOpen(ctx context.Context, items []*entity.Business) {
	for _, b := range items {
		open, err := srv.evaluator.IsOpen(b.Hours)
		if err != nil {
			srv.log(ctx).Warn("Malformed business hours", slog.String("businessID", b.ID.String()), slog.Any("error", err))
			open = false
		}
		b.IsOpen = open
	}
}

func (srv *directoryService) clampPage(page repository.Page) repository.Page {
	if page.Limit <= 0 {
		page.Limit = srv.directory.PageSize
	}
	if page.Limit > srv.directory.MaxPageSize {
		page.Limit = srv.directory.MaxPageSize
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	return page
}
