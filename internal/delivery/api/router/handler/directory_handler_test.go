package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"
	mockUsecase "directorio/internal/mocks/usecase"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupDirectoryHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockDirectoryUsecase) {
	uc := mockUsecase.NewMockDirectoryUsecase(t)
	h := NewDirectoryHandler(DirectoryHandlerParams{DirectoryUC: uc})

	e := newTestEcho()
	e.GET("/businesses", h.ListBusinesses)
	e.GET("/businesses/nearby", h.Nearby)
	e.GET("/businesses/map", h.Map)
	e.GET("/businesses/:id", h.GetBusiness)
	e.GET("/businesses/:id/qr.png", h.ShareCode)

	return e, uc
}

func TestDirectoryHandler_ListBusinesses(t *testing.T) {
	e, uc := setupDirectoryHandler(t)
	pizza := &entity.Business{ID: uuid.New(), Name: "Pizzería Napoli", Category: entity.CategoryRestaurants}

	uc.EXPECT().
		ListBusinesses(mock.Anything,
			mock.MatchedBy(func(s filter.State) bool {
				return s.Category != nil && *s.Category == entity.CategoryRestaurants && s.Query != nil && *s.Query == "pizza"
			}),
			repository.Page{Limit: 10, Offset: 20}).
		Return(&usecase.BusinessPage{Items: []*entity.Business{pizza}, HasMore: true}, nil)

	rec := doRequest(e, http.MethodGet, "/businesses?category=restaurantes&q=pizza&limit=10&offset=20", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta.Page)
	assert.Equal(t, 10, env.Meta.Page.Limit)
	assert.Equal(t, 20, env.Meta.Page.Offset)
	assert.True(t, env.Meta.Page.HasMore)

	var page usecase.BusinessPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Pizzería Napoli", page.Items[0].Name)
}

func TestDirectoryHandler_ListBusinesses_InvalidQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		field  string
	}{
		{name: "negative limit", target: "/businesses?limit=-1", field: "limit"},
		{name: "unknown category", target: "/businesses?category=spa", field: "category"},
		{name: "rating not a number", target: "/businesses?min_rating=alta", field: "min_rating"},
		{name: "rating NaN", target: "/businesses?min_rating=NaN", field: "min_rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupDirectoryHandler(t)

			rec := doRequest(e, http.MethodGet, tt.target, "")
			env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

			var violations []domainerrors.FieldViolation
			require.NoError(t, json.Unmarshal(env.Error.Details, &violations))
			require.NotEmpty(t, violations)
			assert.Equal(t, tt.field, violations[0].Field)
		})
	}
}

func TestDirectoryHandler_GetBusiness(t *testing.T) {
	e, uc := setupDirectoryHandler(t)
	id := uuid.New()
	missing := uuid.New()

	uc.EXPECT().GetBusiness(mock.Anything, id).Return(&entity.Business{ID: id, Name: "Café de la Plaza"}, nil)
	uc.EXPECT().GetBusiness(mock.Anything, missing).Return(nil, errors.WithStack(domainerrors.ErrBusinessNotFound))

	rec := doRequest(e, http.MethodGet, "/businesses/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Café de la Plaza")

	rec = doRequest(e, http.MethodGet, "/businesses/"+missing.String(), "")
	assertErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrBusinessNotFound.ErrorCode())

	rec = doRequest(e, http.MethodGet, "/businesses/no-es-uuid", "")
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestDirectoryHandler_Nearby(t *testing.T) {
	e, uc := setupDirectoryHandler(t)
	near := &usecase.NearbyBusiness{Business: &entity.Business{Name: "Asadero El Llano"}, DistanceMeters: 120}

	uc.EXPECT().Nearby(mock.Anything, 4.8167, -73.6361, 1.5, 5).Return([]*usecase.NearbyBusiness{near}, nil)

	rec := doRequest(e, http.MethodGet, "/businesses/nearby?lat=4.8167&lng=-73.6361&radius_km=1.5&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"distance_m":120`)

	rec = doRequest(e, http.MethodGet, "/businesses/nearby?lng=-73.6", "")
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	rec = doRequest(e, http.MethodGet, "/businesses/nearby?lat=91&lng=0", "")
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestDirectoryHandler_Map(t *testing.T) {
	e, uc := setupDirectoryHandler(t)
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{-73.6361, 4.8167}))

	uc.EXPECT().FeatureCollection(mock.Anything, filter.State{}).Return(fc, nil)

	rec := doRequest(e, http.MethodGet, "/businesses/map", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), `"FeatureCollection"`)
}

func TestDirectoryHandler_ShareCode(t *testing.T) {
	e, uc := setupDirectoryHandler(t)
	id := uuid.New()

	uc.EXPECT().ShareCode(mock.Anything, id).Return([]byte("\x89PNG"), nil)

	rec := doRequest(e, http.MethodGet, "/businesses/"+id.String()+"/qr.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

