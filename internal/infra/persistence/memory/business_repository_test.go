package memory

import (
	"context"
	"fmt"
	"testing"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBusinessRepository_ListApprovedUsesLocalPredicate(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository()

	require.NoError(t, repo.Create(ctx, &entity.Business{Name: "A", Category: entity.CategoryRestaurants, IsApproved: true}))
	require.NoError(t, repo.Create(ctx, &entity.Business{Name: "B", Category: entity.CategoryRestaurants, Rating: ptr(4.2), IsApproved: true, Tags: []string{"Pizza"}}))
	require.NoError(t, repo.Create(ctx, &entity.Business{Name: "C", Category: entity.CategoryRestaurants, Rating: ptr(5.0)}))

	list, hasMore, err := repo.ListApproved(ctx, filter.Criteria{MinRating: ptr(3.0)}, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)

	list, _, err = repo.ListApproved(ctx, filter.State{Query: ptr("pizza")}.Criteria(), repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)
}

func TestBusinessRepository_Paging(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, &entity.Business{Name: name, IsApproved: true}))
	}

	first, hasMore, err := repo.ListApproved(ctx, filter.Criteria{}, repository.Page{Limit: 2})
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Equal(t, "a", first[0].Name)
	assert.Equal(t, "b", first[1].Name)

	rest, hasMore, err := repo.ListApproved(ctx, filter.Criteria{}, repository.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, rest, 1)

	empty, _, err := repo.ListApproved(ctx, filter.Criteria{}, repository.Page{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBusinessRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository()
	b := &entity.Business{Name: "Original", IsApproved: true, Tags: []string{"x"}}
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	got.Name = "Cambiado"
	got.Tags[0] = "y"

	again, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestBusinessRepository_Moderation(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository()
	b := &entity.Business{Name: "Pendiente", Latitude: 4.81, Longitude: -73.63}
	require.NoError(t, repo.Create(ctx, b))

	_, err := repo.FindApprovedByID(ctx, b.ID)
	require.ErrorIs(t, err, repository.ErrBusinessNotFound)

	pending, err := repo.ListPending(ctx, repository.Page{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	require.NoError(t, repo.SetApproved(ctx, b.ID))
	within, err := repo.ListApprovedWithin(ctx, orb.Bound{Min: orb.Point{-74, 4.5}, Max: orb.Point{-73, 5}}, 10)
	require.NoError(t, err)
	assert.Len(t, within, 1)

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.Equal(t, 0, repo.Len())
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), repository.ErrBusinessNotFound)
}

func TestBusinessRepository_ListApprovedWithinClosestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository()
	bound := orb.Bound{Min: orb.Point{-74, 4.5}, Max: orb.Point{-73, 5}}
	center := bound.Center()

	for i := range 50 {
		require.NoError(t, repo.Create(ctx, &entity.Business{
			Name:       fmt.Sprintf("Borde %02d", i),
			Latitude:   4.9,
			Longitude:  -73.9 + 0.01*float64(i),
			IsApproved: true,
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Business{
		Name:       "Centro",
		Latitude:   center.Lat(),
		Longitude:  center.Lon(),
		IsApproved: true,
	}))

	within, err := repo.ListApprovedWithin(ctx, bound, 5)
	require.NoError(t, err)
	require.Len(t, within, 5)
	assert.Equal(t, "Centro", within[0].Name)
}

func TestBusinessRepository_SortsBySpanishCollation(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository()
	for _, name := range []string{"Ñapa", "zapatería", "Álamo", "Nogal"} {
		require.NoError(t, repo.Create(ctx, &entity.Business{Name: name, IsApproved: true}))
	}

	list, _, err := repo.ListApproved(ctx, filter.Criteria{}, repository.Page{Limit: 10})
	require.NoError(t, err)

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"Álamo", "Nogal", "Ñapa", "zapatería"}, names)
}
