package handler

import (
	"net/http"
	"strconv"

	"directorio/internal/delivery/api/response"
	"directorio/internal/domain/filter"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BrowseHandlerParams holds dependencies for BrowseHandler, injected by Fx.
type BrowseHandlerParams struct {
	fx.In

	BrowseUC usecase.BrowseUsecase
}

// BrowseHandler exposes browse sessions: filter state, staged drafts, paging and favorites.
type BrowseHandler struct {
	browseUC usecase.BrowseUsecase
}

// NewBrowseHandler is the constructor for BrowseHandler
func NewBrowseHandler(params BrowseHandlerParams) *BrowseHandler {
	return &BrowseHandler{browseUC: params.BrowseUC}
}

// FavoriteResponse reports the favorite flag after a toggle
type FavoriteResponse struct {
	BusinessID string `json:"business_id"`
	Favorite   bool   `json:"favorite"`
}

// Open handles POST /api/v1/sessions. The optional body is the initial filter.
func (h *BrowseHandler) Open(c echo.Context) error {
	var patch filter.Patch
	if err := bind(c, &patch); err != nil {
		return err
	}
	initial, err := stateFromPatch(patch)
	if err != nil {
		return err
	}

	snap, err := h.browseUC.Open(c.Request().Context(), initial)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, snap)
}

// Snapshot handles GET /api/v1/sessions/:id. With wait=true it blocks until the fetch settles.
func (h *BrowseHandler) Snapshot(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	wait, _ := strconv.ParseBool(c.QueryParam("wait"))
	var snap *usecase.BrowseSnapshot
	if wait {
		snap, err = h.browseUC.Await(c.Request().Context(), id)
	} else {
		snap, err = h.browseUC.Snapshot(id)
	}
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, snap)
}

// SetFilter handles PATCH /api/v1/sessions/:id/filter
func (h *BrowseHandler) SetFilter(c echo.Context) error {
	return h.withPatch(c, h.browseUC.SetFilter)
}

// StageFilter handles PATCH /api/v1/sessions/:id/staged
func (h *BrowseHandler) StageFilter(c echo.Context) error {
	return h.withPatch(c, h.browseUC.StageFilter)
}

// ClearFilters handles DELETE /api/v1/sessions/:id/filter
func (h *BrowseHandler) ClearFilters(c echo.Context) error {
	return h.withSession(c, h.browseUC.ClearFilters)
}

// ApplyStaged handles POST /api/v1/sessions/:id/staged/apply
func (h *BrowseHandler) ApplyStaged(c echo.Context) error {
	return h.withSession(c, h.browseUC.ApplyStaged)
}

// DiscardStaged handles DELETE /api/v1/sessions/:id/staged
func (h *BrowseHandler) DiscardStaged(c echo.Context) error {
	return h.withSession(c, h.browseUC.DiscardStaged)
}

// Refresh handles POST /api/v1/sessions/:id/refresh
func (h *BrowseHandler) Refresh(c echo.Context) error {
	return h.withSession(c, h.browseUC.Refresh)
}

// LoadMore handles POST /api/v1/sessions/:id/more
func (h *BrowseHandler) LoadMore(c echo.Context) error {
	return h.withSession(c, h.browseUC.LoadMore)
}

// ToggleFavorite handles PUT /api/v1/sessions/:id/favorites/:businessId
func (h *BrowseHandler) ToggleFavorite(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "businessId")
	if err != nil {
		return err
	}

	favorite, err := h.browseUC.ToggleFavorite(id, businessID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, FavoriteResponse{BusinessID: businessID.String(), Favorite: favorite})
}

// View handles GET /api/v1/sessions/:id/businesses/:businessId
func (h *BrowseHandler) View(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "businessId")
	if err != nil {
		return err
	}

	business, err := h.browseUC.View(c.Request().Context(), id, businessID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, business)
}

// Close handles DELETE /api/v1/sessions/:id
func (h *BrowseHandler) Close(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.browseUC.Close(id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *BrowseHandler) withSession(c echo.Context, op func(uuid.UUID) (*usecase.BrowseSnapshot, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	snap, err := op(id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, snap)
}

func (h *BrowseHandler) withPatch(c echo.Context, op func(uuid.UUID, filter.Patch) (*usecase.BrowseSnapshot, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var patch filter.Patch
	if err := bind(c, &patch); err != nil {
		return err
	}

	snap, err := op(id, patch)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, snap)
}
