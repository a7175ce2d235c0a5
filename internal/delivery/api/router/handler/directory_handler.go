package handler

import (
	"net/http"

	"directorio/internal/delivery/api/response"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
}

// DirectoryHandler serves the public listing endpoints.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{directoryUC: params.DirectoryUC}
}

// ListBusinesses handles GET /api/v1/businesses
func (h *DirectoryHandler) ListBusinesses(c echo.Context) error {
	state, err := stateFromQuery(c)
	if err != nil {
		return err
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	result, err := h.directoryUC.ListBusinesses(c.Request().Context(), state, page)
	if err != nil {
		return err
	}

	return response.Paginated(c, result, response.Page{
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: result.HasMore,
	})
}

// GetBusiness handles GET /api/v1/businesses/:id
func (h *DirectoryHandler) GetBusiness(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.directoryUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, business)
}

// Nearby handles GET /api/v1/businesses/nearby?lat=&lng=&radius_km=&limit=
func (h *DirectoryHandler) Nearby(c echo.Context) error {
	lat, err := floatQuery(c, "lat", true)
	if err != nil {
		return err
	}
	lng, err := floatQuery(c, "lng", true)
	if err != nil {
		return err
	}
	if lat < -90 || lat > 90 {
		return invalidField("lat", "La latitud debe estar entre -90 y 90")
	}
	if lng < -180 || lng > 180 {
		return invalidField("lng", "La longitud debe estar entre -180 y 180")
	}
	radius, err := floatQuery(c, "radius_km", false)
	if err != nil {
		return err
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	nearby, err := h.directoryUC.Nearby(c.Request().Context(), lat, lng, radius, page.Limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nearby)
}

// Map handles GET /api/v1/businesses/map and answers raw GeoJSON for map clients.
func (h *DirectoryHandler) Map(c echo.Context) error {
	state, err := stateFromQuery(c)
	if err != nil {
		return err
	}

	fc, err := h.directoryUC.FeatureCollection(c.Request().Context(), state)
	if err != nil {
		return err
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "application/geo+json", data)
}

// ShareCode handles GET /api/v1/businesses/:id/qr.png
func (h *DirectoryHandler) ShareCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.directoryUC.ShareCode(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Catalogue handles GET /api/v1/catalogue
func (h *DirectoryHandler) Catalogue(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.directoryUC.Catalogue())
}

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
