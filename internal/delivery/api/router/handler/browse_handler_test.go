package handler

import (
	"net/http"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	mockUsecase "directorio/internal/mocks/usecase"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupBrowseHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockBrowseUsecase) {
	uc := mockUsecase.NewMockBrowseUsecase(t)
	h := NewBrowseHandler(BrowseHandlerParams{BrowseUC: uc})

	e := newTestEcho()
	e.POST("/sessions", h.Open)
	e.GET("/sessions/:id", h.Snapshot)
	e.PATCH("/sessions/:id/filter", h.SetFilter)
	e.DELETE("/sessions/:id/filter", h.ClearFilters)
	e.PATCH("/sessions/:id/staged", h.StageFilter)
	e.POST("/sessions/:id/staged/apply", h.ApplyStaged)
	e.POST("/sessions/:id/more", h.LoadMore)
	e.PUT("/sessions/:id/favorites/:businessId", h.ToggleFavorite)
	e.GET("/sessions/:id/businesses/:businessId", h.View)
	e.DELETE("/sessions/:id", h.Close)

	return e, uc
}

func TestBrowseHandler_Open(t *testing.T) {
	e, uc := setupBrowseHandler(t)
	id := uuid.New()

	uc.EXPECT().
		Open(mock.Anything, mock.MatchedBy(func(s filter.State) bool {
			return s.Category != nil && *s.Category == entity.CategoryCafes && s.Zone == nil
		})).
		Return(&usecase.BrowseSnapshot{SessionID: id, Status: usecase.BrowseStatusLoading}, nil)

	rec := doRequest(e, http.MethodPost, "/sessions", `{"category":"cafeterias"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), id.String())
	assert.Contains(t, rec.Body.String(), `"status":"loading"`)
}

func TestBrowseHandler_Open_InvalidFilter(t *testing.T) {
	e, _ := setupBrowseHandler(t)

	rec := doRequest(e, http.MethodPost, "/sessions", `{"min_rating":9}`)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	rec = doRequest(e, http.MethodPost, "/sessions", `{"category":`)
	assertErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrInvalidInput.ErrorCode())
}

func TestBrowseHandler_Snapshot(t *testing.T) {
	e, uc := setupBrowseHandler(t)
	id := uuid.New()

	uc.EXPECT().Snapshot(id).Return(&usecase.BrowseSnapshot{SessionID: id, Status: usecase.BrowseStatusLoading}, nil)
	uc.EXPECT().Await(mock.Anything, id).Return(&usecase.BrowseSnapshot{SessionID: id, Status: usecase.BrowseStatusReady}, nil)

	rec := doRequest(e, http.MethodGet, "/sessions/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"loading"`)

	rec = doRequest(e, http.MethodGet, "/sessions/"+id.String()+"?wait=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)
}

func TestBrowseHandler_SetFilter(t *testing.T) {
	e, uc := setupBrowseHandler(t)
	id := uuid.New()

	uc.EXPECT().
		SetFilter(id, mock.MatchedBy(func(p filter.Patch) bool {
			return p.Zone.Set && *p.Zone.Value == entity.ZoneVeredas && p.Category.Set && p.Category.Value == nil && !p.Query.Set
		})).
		Return(&usecase.BrowseSnapshot{SessionID: id, Generation: 2}, nil)

	rec := doRequest(e, http.MethodPatch, "/sessions/"+id.String()+"/filter", `{"location":"veredas","category":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"generation":2`)
}

func TestBrowseHandler_SessionNotFound(t *testing.T) {
	e, uc := setupBrowseHandler(t)
	id := uuid.New()

	uc.EXPECT().ClearFilters(id).Return(nil, errors.WithStack(domainerrors.ErrSessionNotFound))
	uc.EXPECT().LoadMore(id).Return(nil, errors.WithStack(domainerrors.ErrSessionNotFound))

	rec := doRequest(e, http.MethodDelete, "/sessions/"+id.String()+"/filter", "")
	assertErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrSessionNotFound.ErrorCode())

	rec = doRequest(e, http.MethodPost, "/sessions/"+id.String()+"/more", "")
	assertErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrSessionNotFound.ErrorCode())
}

func TestBrowseHandler_StageAndApply(t *testing.T) {
	e, uc := setupBrowseHandler(t)
	id := uuid.New()

	uc.EXPECT().
		StageFilter(id, mock.MatchedBy(func(p filter.Patch) bool {
			return p.PriceTier.Set && *p.PriceTier.Value == entity.PriceTier("$$")
		})).
		Return(&usecase.BrowseSnapshot{SessionID: id, Generation: 1}, nil)
	uc.EXPECT().ApplyStaged(id).Return(&usecase.BrowseSnapshot{SessionID: id, Generation: 2}, nil)

	rec := doRequest(e, http.MethodPatch, "/sessions/"+id.String()+"/staged", `{"price_range":"$$"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/sessions/"+id.String()+"/staged/apply", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"generation":2`)
}

func TestBrowseHandler_FavoritesAndViews(t *testing.T) {
	e, uc := setupBrowseHandler(t)
	id := uuid.New()
	businessID := uuid.New()

	uc.EXPECT().ToggleFavorite(id, businessID).Return(true, nil)
	uc.EXPECT().View(mock.Anything, id, businessID).Return(&entity.Business{ID: businessID, Name: "Tienda Don Pedro"}, nil)
	uc.EXPECT().Close(id).Return(nil)

	rec := doRequest(e, http.MethodPut, "/sessions/"+id.String()+"/favorites/"+businessID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorite":true`)

	rec = doRequest(e, http.MethodGet, "/sessions/"+id.String()+"/businesses/"+businessID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tienda Don Pedro")

	rec = doRequest(e, http.MethodDelete, "/sessions/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
