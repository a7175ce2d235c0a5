package usecase

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/service"

	"github.com/google/uuid"
)

// TileRef locates the basemap tile that contains a business
type TileRef struct {
	Z   uint32 `json:"z"`
	X   uint32 `json:"x"`
	Y   uint32 `json:"y"`
	URL string `json:"url"`
}

// MapUsecase serves map tiles and category images
type MapUsecase interface {
	// Tile returns a basemap tile. Missing tiles return ErrTileNotFound.
	Tile(ctx context.Context, z uint8, x, y uint32) (*service.Tile, error)

	// BusinessTile returns the detail tile of an approved business
	BusinessTile(ctx context.Context, id uuid.UUID) (*TileRef, error)

	// Placeholder returns the default PNG of a category
	Placeholder(category entity.Category) ([]byte, error)
}
