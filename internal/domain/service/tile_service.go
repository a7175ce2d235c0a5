package service

import "context"

// Tile is one encoded basemap tile.
type Tile struct {
	Data            []byte
	ContentType     string
	ContentEncoding string
}

// TileService serves basemap tiles.
type TileService interface {
	// Tile returns the tile at z/x/y. A missing tile returns (nil, nil).
	Tile(ctx context.Context, z uint8, x, y uint32) (*Tile, error)
}
