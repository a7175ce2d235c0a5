package tiles

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"directorio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeServer struct {
	paths   []string
	status  int
	headers map[string]string
	data    []byte
}

func (f *fakeServer) Get(_ context.Context, path string) (int, map[string]string, []byte) {
	f.paths = append(f.paths, path)

	return f.status, f.headers, f.data
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPMTilesService_Tile(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		headers  map[string]string
		wantTile bool
		wantErr  bool
	}{
		{
			name:     "found with encoding",
			status:   http.StatusOK,
			headers:  map[string]string{"Content-Type": "application/x-protobuf", "Content-Encoding": "gzip"},
			wantTile: true,
		},
		{name: "found without headers", status: http.StatusOK, wantTile: true},
		{name: "empty tile", status: http.StatusNoContent},
		{name: "missing tile", status: http.StatusNotFound},
		{name: "archive failure", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &fakeServer{status: tt.status, headers: tt.headers, data: []byte{0x1f, 0x8b}}
			svc := &pmtilesService{tileset: "gacheta", server: server, logger: discardLogger()}

			tile, err := svc.Tile(context.Background(), 14, 4840, 7970)
			assert.Equal(t, []string{"/gacheta/14/4840/7970.mvt"}, server.paths)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			if !tt.wantTile {
				assert.Nil(t, tile)

				return
			}
			require.NotNil(t, tile)
			assert.Equal(t, []byte{0x1f, 0x8b}, tile.Data)
			assert.NotEmpty(t, tile.ContentType)
			assert.Equal(t, tt.headers["Content-Encoding"], tile.ContentEncoding)
		})
	}
}

func TestNewTileService_Disabled(t *testing.T) {
	svc, err := NewTileService(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    discardLogger(),
	})
	require.NoError(t, err)
	assert.Nil(t, svc)

	_, err = NewTileService(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{PMTiles: &config.PMTilesConfig{Enabled: true}},
		Logger:    discardLogger(),
	})
	require.Error(t, err)
}

func TestBucketURL(t *testing.T) {
	local := bucketURL("data/tiles")
	assert.True(t, strings.HasPrefix(local, "file:///"), local)
	assert.True(t, strings.HasSuffix(local, "/data/tiles"), local)
	assert.Equal(t, "https://tiles.example.com", bucketURL("https://tiles.example.com"))
	assert.Equal(t, "s3://basemaps", bucketURL("s3://basemaps"))
}
