package handler

import (
	"net/http"
	"strconv"
	"strings"

	"directorio/internal/delivery/api/response"
	"directorio/internal/domain/entity"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxTileZoom = 22

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC usecase.MapUsecase
}

// MapHandler serves basemap tiles and category placeholder images.
type MapHandler struct {
	mapUC usecase.MapUsecase
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{mapUC: params.MapUC}
}

// Tile handles GET /api/v1/tiles/:z/:x/:y.mvt
func (h *MapHandler) Tile(c echo.Context) error {
	z, err := strconv.ParseUint(c.Param("z"), 10, 8)
	if err != nil || z > maxTileZoom {
		return invalidField("z", "Nivel de zoom no válido")
	}
	x, err := strconv.ParseUint(c.Param("x"), 10, 32)
	if err != nil {
		return invalidField("x", "Coordenada no válida")
	}
	y, err := strconv.ParseUint(strings.TrimSuffix(c.Param("y"), ".mvt"), 10, 32)
	if err != nil {
		return invalidField("y", "Coordenada no válida")
	}
	if limit := uint64(1) << z; x >= limit || y >= limit {
		return invalidField("x", "La tesela está fuera del rango del zoom")
	}

	tile, err := h.mapUC.Tile(c.Request().Context(), uint8(z), uint32(x), uint32(y))
	if err != nil {
		return err
	}

	if tile.ContentEncoding != "" {
		c.Response().Header().Set(echo.HeaderContentEncoding, tile.ContentEncoding)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, tile.ContentType, tile.Data)
}

// BusinessTile handles GET /api/v1/businesses/:id/tile
func (h *MapHandler) BusinessTile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ref, err := h.mapUC.BusinessTile(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ref)
}

// Placeholder handles GET /api/v1/categories/:category/placeholder.png
func (h *MapHandler) Placeholder(c echo.Context) error {
	png, err := h.mapUC.Placeholder(entity.Category(c.Param("category")))
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=604800")

	return c.Blob(http.StatusOK, "image/png", png)
}
