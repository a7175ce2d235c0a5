// Package storage keeps submitted business images in a blob bucket or an S3-compatible store.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"directorio/config"
	"directorio/internal/domain/constants"
	"directorio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

// DefaultMediaPath is where the API serves images of the file provider.
const DefaultMediaPath = "/media"

// Params holds dependencies for the image store
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore builds the store selected by storage.provider.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	urls := publicURLs{base: strings.TrimRight(cfg.PublicBaseURL, "/")}
	if urls.base == "" {
		urls.base = DefaultMediaPath
	}

	switch cfg.Provider {
	case constants.StorageProviderFile:
		if cfg.Dir == "" {
			return nil, errors.New("storage dir is required for the file provider")
		}
		bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open image dir %s", cfg.Dir)
		}
		params.Logger.Info("Storing images on disk", slog.String("dir", cfg.Dir))

		return newBlobStore(params.Lifecycle, bucket, urls), nil

	case "", constants.StorageProviderMemory:
		params.Logger.Info("Storing images in memory")

		return newBlobStore(params.Lifecycle, memblob.OpenBucket(nil), urls), nil

	case constants.StorageProviderS3:
		store, err := newS3Store(params.Ctx, cfg, urls)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Storing images in S3 bucket", slog.String("bucket", cfg.S3.Bucket))

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// publicURLs maps keys to public URLs and back.
type publicURLs struct {
	base string
}

func (u publicURLs) URL(key string) string {
	return u.base + "/" + key
}

func (u publicURLs) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, u.base+"/")
	if !ok || key == "" {
		return "", false
	}

	return key, true
}
