package handler

import (
	"net/http"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/service"
	mockUsecase "directorio/internal/mocks/usecase"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMapHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockMapUsecase) {
	uc := mockUsecase.NewMockMapUsecase(t)
	h := NewMapHandler(MapHandlerParams{MapUC: uc})

	e := newTestEcho()
	e.GET("/tiles/:z/:x/:y", h.Tile)
	e.GET("/businesses/:id/tile", h.BusinessTile)
	e.GET("/categories/:category/placeholder.png", h.Placeholder)

	return e, uc
}

func TestMapHandler_Tile(t *testing.T) {
	e, uc := setupMapHandler(t)

	uc.EXPECT().
		Tile(mock.Anything, uint8(15), uint32(9563), uint32(16138)).
		Return(&service.Tile{Data: []byte{0x1f, 0x8b}, ContentType: "application/vnd.mapbox-vector-tile", ContentEncoding: "gzip"}, nil)

	rec := doRequest(e, http.MethodGet, "/tiles/15/9563/16138.mvt", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/vnd.mapbox-vector-tile", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "gzip", rec.Header().Get(echo.HeaderContentEncoding))
	assert.Equal(t, []byte{0x1f, 0x8b}, rec.Body.Bytes())
}

func TestMapHandler_Tile_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "zoom too deep", target: "/tiles/23/0/0.mvt"},
		{name: "x outside zoom", target: "/tiles/2/4/0.mvt"},
		{name: "y not a number", target: "/tiles/2/1/abc.mvt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupMapHandler(t)

			rec := doRequest(e, http.MethodGet, tt.target, "")
			assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestMapHandler_Tile_Missing(t *testing.T) {
	e, uc := setupMapHandler(t)

	uc.EXPECT().Tile(mock.Anything, uint8(3), uint32(1), uint32(1)).Return(nil, errors.WithStack(domainerrors.ErrTileNotFound))

	rec := doRequest(e, http.MethodGet, "/tiles/3/1/1.mvt", "")
	assertErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrTileNotFound.ErrorCode())
}

func TestMapHandler_BusinessTile(t *testing.T) {
	e, uc := setupMapHandler(t)
	id := uuid.New()

	uc.EXPECT().BusinessTile(mock.Anything, id).Return(&usecase.TileRef{Z: 16, X: 19127, Y: 32276, URL: "/api/v1/tiles/16/19127/32276.mvt"}, nil)

	rec := doRequest(e, http.MethodGet, "/businesses/"+id.String()+"/tile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"/api/v1/tiles/16/19127/32276.mvt"`)
}

func TestMapHandler_Placeholder(t *testing.T) {
	e, uc := setupMapHandler(t)

	uc.EXPECT().Placeholder(entity.CategoryShops).Return([]byte("\x89PNG"), nil)
	uc.EXPECT().Placeholder(entity.Category("spa")).Return(nil, errors.WithStack(domainerrors.ErrUnknownCategory))

	rec := doRequest(e, http.MethodGet, "/categories/tiendas/placeholder.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = doRequest(e, http.MethodGet, "/categories/spa/placeholder.png", "")
	assertErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrUnknownCategory.ErrorCode())
}
