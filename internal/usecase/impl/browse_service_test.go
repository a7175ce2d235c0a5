package impl

import (
	"context"
	"testing"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"
	mockUsecase "directorio/internal/mocks/usecase"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type browseServiceFixtures struct {
	service   *browseService
	directory *mockUsecase.MockDirectoryUsecase
}

func createTestBrowseService(t *testing.T) browseServiceFixtures {
	directory := mockUsecase.NewMockDirectoryUsecase(t)
	cfg := testConfig()
	cfg.Directory.PageSize = 2
	cfg.Directory.RecentlyViewedMax = 3

	service := NewBrowseService(BrowseServiceParams{
		Directory: directory,
		Config:    cfg,
		Logger:    discardLogger(),
	}).(*browseService)
	t.Cleanup(service.shutdown)

	return browseServiceFixtures{
		service:   service,
		directory: directory,
	}
}

func named(names ...string) []*entity.Business {
	out := make([]*entity.Business, 0, len(names))
	for _, n := range names {
		out = append(out, &entity.Business{ID: uuid.New(), Name: n, Category: entity.CategoryRestaurants})
	}

	return out
}

func openAndAwait(t *testing.T, fx browseServiceFixtures, initial filter.State) *usecase.BrowseSnapshot {
	t.Helper()

	snap, err := fx.service.Open(context.Background(), initial)
	require.NoError(t, err)
	assert.Equal(t, usecase.BrowseStatusLoading, snap.Status)

	settled, err := fx.service.Await(context.Background(), snap.SessionID)
	require.NoError(t, err)

	return settled
}

func TestBrowseService_OpenFetchesFirstPage(t *testing.T) {
	fx := createTestBrowseService(t)
	items := named("Arepas Doña Rosa", "Brasas")

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{Items: items, HasMore: true}, nil)

	snap := openAndAwait(t, fx, filter.State{})
	assert.Equal(t, usecase.BrowseStatusReady, snap.Status)
	assert.Equal(t, items, snap.Items)
	assert.True(t, snap.HasMore)
	assert.Nil(t, snap.Error)
}

func TestBrowseService_SetFilterRefetchesWithMergedState(t *testing.T) {
	fx := createTestBrowseService(t)
	cafes := named("Café del Parque")

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{Items: named("A", "B")}, nil)
	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{Category: ptr(entity.CategoryCafes)}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{Items: cafes}, nil)

	snap := openAndAwait(t, fx, filter.State{})

	_, err := fx.service.SetFilter(snap.SessionID, filter.Patch{Category: filter.Set(entity.Category("Cafeterías"))})
	require.NoError(t, err)

	snap, err = fx.service.Await(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, cafes, snap.Items)
	assert.Equal(t, entity.CategoryCafes, *snap.Active.Category)
}

func TestBrowseService_SetFilterRejectsInvalidPatch(t *testing.T) {
	fx := createTestBrowseService(t)

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{}, nil)

	snap := openAndAwait(t, fx, filter.State{})

	_, err := fx.service.SetFilter(snap.SessionID, filter.Patch{MinRating: filter.Set(7.0)})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "min_rating", verr.Violations()[0].Field)
}

func TestBrowseService_LastWriteWins(t *testing.T) {
	fx := createTestBrowseService(t)
	release := make(chan struct{})
	latest := named("Droguería Central")

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		RunAndReturn(func(context.Context, filter.State, repository.Page) (*usecase.BusinessPage, error) {
			// Ignores cancellation so its result arrives after the newer fetch settled.
			<-release

			return &usecase.BusinessPage{Items: named("Obsoleto")}, nil
		})
	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{Category: ptr(entity.CategoryHealth)}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{Items: latest}, nil)

	snap, err := fx.service.Open(context.Background(), filter.State{})
	require.NoError(t, err)
	first := snap.Generation

	snap, err = fx.service.SetFilter(snap.SessionID, filter.Patch{Category: filter.Set(entity.CategoryHealth)})
	require.NoError(t, err)
	assert.Greater(t, snap.Generation, first)

	snap, err = fx.service.Await(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, latest, snap.Items)

	close(release)
	fx.service.fetches.Wait()

	snap, err = fx.service.Snapshot(snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, usecase.BrowseStatusReady, snap.Status)
	assert.Equal(t, latest, snap.Items)
}

func TestBrowseService_SupersededFetchIsCancelled(t *testing.T) {
	fx := createTestBrowseService(t)
	cancelled := make(chan struct{})

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		RunAndReturn(func(ctx context.Context, _ filter.State, _ repository.Page) (*usecase.BusinessPage, error) {
			<-ctx.Done()
			close(cancelled)

			return nil, ctx.Err()
		}).
		Once()
	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{}, nil).
		Once()

	snap, err := fx.service.Open(context.Background(), filter.State{})
	require.NoError(t, err)

	_, err = fx.service.ClearFilters(snap.SessionID)
	require.NoError(t, err)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("first fetch was not cancelled")
	}
}

func TestBrowseService_FailureAndRefresh(t *testing.T) {
	fx := createTestBrowseService(t)
	items := named("Tienda El Ahorro")

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(nil, errors.WithStack(domainerrors.ErrFetchFailed)).
		Once()

	snap := openAndAwait(t, fx, filter.State{})
	assert.Equal(t, usecase.BrowseStatusFailed, snap.Status)
	require.NotNil(t, snap.Error)
	assert.Equal(t, "FETCH_FAILED", snap.Error.Code)
	assert.Equal(t, "No se pudieron cargar los negocios", snap.Error.Message)

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{Items: items}, nil).
		Once()

	_, err := fx.service.Refresh(snap.SessionID)
	require.NoError(t, err)

	snap, err = fx.service.Await(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, usecase.BrowseStatusReady, snap.Status)
	assert.Nil(t, snap.Error)
	assert.Equal(t, items, snap.Items)
}

func TestBrowseService_LoadMoreAppends(t *testing.T) {
	fx := createTestBrowseService(t)
	first := named("Alfa", "Delta")
	second := named("Beta")

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{Items: first, HasMore: true}, nil)
	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2, Offset: 2}).
		Return(&usecase.BusinessPage{Items: second}, nil)

	snap := openAndAwait(t, fx, filter.State{})

	_, err := fx.service.LoadMore(snap.SessionID)
	require.NoError(t, err)

	snap, err = fx.service.Await(context.Background(), snap.SessionID)
	require.NoError(t, err)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, "Alfa", snap.Items[0].Name)
	assert.Equal(t, "Beta", snap.Items[1].Name)
	assert.Equal(t, "Delta", snap.Items[2].Name)
	assert.False(t, snap.HasMore)

	_, err = fx.service.LoadMore(snap.SessionID)
	require.ErrorIs(t, err, domainerrors.ErrNoMoreResults)
}

func TestBrowseService_StagingDoesNotFetchUntilApplied(t *testing.T) {
	fx := createTestBrowseService(t)
	staged := filter.State{Zone: ptr(entity.ZoneVeredas), MinRating: ptr(4.0)}

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{}, nil).
		Once()

	snap := openAndAwait(t, fx, filter.State{})

	snap, err := fx.service.StageFilter(snap.SessionID, filter.Patch{
		Zone:      filter.Set(entity.ZoneVeredas),
		MinRating: filter.Set(4.0),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.BrowseStatusReady, snap.Status)
	assert.True(t, snap.Active.IsEmpty())
	assert.True(t, snap.Staged.Equal(staged))

	snap, err = fx.service.DiscardStaged(snap.SessionID)
	require.NoError(t, err)
	assert.True(t, snap.Staged.IsEmpty())

	_, err = fx.service.StageFilter(snap.SessionID, filter.Patch{
		Zone:      filter.Set(entity.ZoneVeredas),
		MinRating: filter.Set(4.0),
	})
	require.NoError(t, err)

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, staged, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{}, nil).
		Once()

	_, err = fx.service.ApplyStaged(snap.SessionID)
	require.NoError(t, err)

	snap, err = fx.service.Await(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.True(t, snap.Active.Equal(staged))
}

func TestBrowseService_FavoritesAndRecentlyViewed(t *testing.T) {
	fx := createTestBrowseService(t)
	items := named("Uno", "Dos")
	remote := &entity.Business{ID: uuid.New(), Name: "Tres"}

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, filter.State{}, repository.Page{Limit: 2}).
		Return(&usecase.BusinessPage{Items: items}, nil)
	fx.directory.EXPECT().
		GetBusiness(mock.Anything, remote.ID).
		Return(remote, nil).
		Once()
	fx.directory.EXPECT().
		GetBusiness(mock.Anything, mock.Anything).
		Return(&entity.Business{ID: uuid.New()}, nil)

	snap := openAndAwait(t, fx, filter.State{})
	ctx := context.Background()

	on, err := fx.service.ToggleFavorite(snap.SessionID, items[0].ID)
	require.NoError(t, err)
	assert.True(t, on)
	on, err = fx.service.ToggleFavorite(snap.SessionID, items[0].ID)
	require.NoError(t, err)
	assert.False(t, on)

	got, err := fx.service.View(ctx, snap.SessionID, items[0].ID)
	require.NoError(t, err)
	assert.Same(t, items[0], got)

	got, err = fx.service.View(ctx, snap.SessionID, remote.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tres", got.Name)

	_, err = fx.service.View(ctx, snap.SessionID, items[0].ID)
	require.NoError(t, err)

	extra := uuid.New()
	_, err = fx.service.View(ctx, snap.SessionID, extra)
	require.NoError(t, err)
	_, err = fx.service.View(ctx, snap.SessionID, uuid.New())
	require.NoError(t, err)

	snap, err = fx.service.Snapshot(snap.SessionID)
	require.NoError(t, err)
	assert.Empty(t, snap.Favorites)
	require.Len(t, snap.RecentlyViewed, 3)
	assert.Equal(t, extra, snap.RecentlyViewed[1])
	assert.Equal(t, items[0].ID, snap.RecentlyViewed[2])
}

func TestBrowseService_CloseAndEvictIdle(t *testing.T) {
	fx := createTestBrowseService(t)
	clock := time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return clock }

	fx.directory.EXPECT().
		ListBusinesses(mock.Anything, mock.Anything, mock.Anything).
		Return(&usecase.BusinessPage{}, nil)

	idle := openAndAwait(t, fx, filter.State{})
	clock = clock.Add(time.Hour)
	active := openAndAwait(t, fx, filter.State{})
	closed := openAndAwait(t, fx, filter.State{})

	require.NoError(t, fx.service.Close(closed.SessionID))
	require.ErrorIs(t, fx.service.Close(closed.SessionID), domainerrors.ErrSessionNotFound)

	evicted := fx.service.EvictIdle(clock.Add(-30 * time.Minute))
	assert.Equal(t, 1, evicted)

	_, err := fx.service.Snapshot(idle.SessionID)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	_, err = fx.service.Snapshot(active.SessionID)
	require.NoError(t, err)
}
