package usecase

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// BusinessPage is one page of a filtered listing.
type BusinessPage struct {
	Items   []*entity.Business `json:"items"`
	HasMore bool               `json:"has_more"`
	Flags   filter.Flags       `json:"flags"`
}

// NearbyBusiness is a business with its distance from the search point.
type NearbyBusiness struct {
	*entity.Business
	DistanceMeters float64 `json:"distance_m"`
}

// CategoryInfo describes one category for clients.
type CategoryInfo struct {
	Tag              entity.Category `json:"tag"`
	Label            string          `json:"label"`
	Icon             string          `json:"icon"`
	PlaceholderImage string          `json:"placeholder_image"`
}

// ZoneInfo describes one zone for clients.
type ZoneInfo struct {
	Tag   entity.Zone `json:"tag"`
	Label string      `json:"label"`
}

// Catalogue lists every filter option.
type Catalogue struct {
	Categories []CategoryInfo     `json:"categories"`
	Zones      []ZoneInfo         `json:"zones"`
	PriceTiers []entity.PriceTier `json:"price_ranges"`
	Ratings    []int              `json:"ratings"`
}

// DirectoryUsecase defines the public read side of the directory
type DirectoryUsecase interface {
	// ListBusinesses returns approved businesses matching state, with IsOpen computed and sorted by name
	ListBusinesses(ctx context.Context, state filter.State, page repository.Page) (*BusinessPage, error)

	// GetBusiness returns an approved business
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// Nearby returns approved businesses within radiusKm of a point, closest first
	Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*NearbyBusiness, error)

	// FeatureCollection returns the businesses matching state as GeoJSON points
	FeatureCollection(ctx context.Context, state filter.State) (*geojson.FeatureCollection, error)

	// ShareCode returns a PNG QR code pointing at the public page of a business
	ShareCode(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Catalogue returns the filter options
	Catalogue() *Catalogue
}
