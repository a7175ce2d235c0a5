// Package tiles serves basemap vector tiles from a PMTiles archive.
package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"directorio/config"
	"directorio/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

const defaultCacheSizeMB = 64

// tileGetter is the subset of pmtiles.Server used here.
type tileGetter interface {
	Get(ctx context.Context, path string) (int, map[string]string, []byte)
}

type pmtilesService struct {
	tileset string
	server  tileGetter
	logger  *slog.Logger
}

// Params holds dependencies for the tile service
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTileService opens the configured archive. It returns nil when tiles are disabled.
func NewTileService(params Params) (service.TileService, error) {
	cfg := params.Config.PMTiles
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Basemap tiles disabled")

		return nil, nil
	}
	if cfg.Bucket == "" || cfg.Tileset == "" {
		return nil, errors.New("pmtiles bucket and tileset are required when enabled")
	}

	cacheSize := cfg.CacheSizeMB
	if cacheSize <= 0 {
		cacheSize = defaultCacheSizeMB
	}

	server, err := pmtiles.NewServer(bucketURL(cfg.Bucket), "", log.New(io.Discard, "", 0), cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			server.Start()

			return nil
		},
	})

	params.Logger.Info("Basemap tiles enabled",
		slog.String("bucket", cfg.Bucket),
		slog.String("tileset", cfg.Tileset),
	)

	return &pmtilesService{
		tileset: strings.TrimSuffix(cfg.Tileset, ".pmtiles"),
		server:  server,
		logger:  params.Logger,
	}, nil
}

// bucketURL accepts plain directories as well as file://, http(s):// and cloud bucket URLs.
func bucketURL(bucket string) string {
	if strings.Contains(bucket, "://") {
		return bucket
	}
	if abs, err := filepath.Abs(bucket); err == nil {
		bucket = abs
	}

	return "file://" + filepath.ToSlash(bucket)
}

// Tile returns the tile at z/x/y. A missing tile returns (nil, nil).
func (s *pmtilesService) Tile(ctx context.Context, z uint8, x, y uint32) (*service.Tile, error) {
	path := fmt.Sprintf("/%s/%d/%d/%d.mvt", s.tileset, z, x, y)

	status, headers, data := s.server.Get(ctx, path)
	switch status {
	case http.StatusOK:
		return &service.Tile{
			Data:            data,
			ContentType:     headerOr(headers, "Content-Type", "application/vnd.mapbox-vector-tile"),
			ContentEncoding: headers["Content-Encoding"],
		}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, nil
	default:
		return nil, errors.Errorf("pmtiles returned status %d for %s", status, path)
	}
}

func headerOr(headers map[string]string, key, fallback string) string {
	if v := headers[key]; v != "" {
		return v
	}

	return fallback
}
