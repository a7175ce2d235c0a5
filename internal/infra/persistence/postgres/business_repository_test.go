package postgres

import (
	"context"
	"fmt"
	"testing"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/hours"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusiness(name string, mutate ...func(*entity.Business)) *entity.Business {
	b := &entity.Business{
		Name:       name,
		Category:   entity.CategoryRestaurants,
		Address:    "Calle 4 # 3-20",
		City:       "Gachetá",
		State:      "Cundinamarca",
		ZipCode:    "251230",
		Zone:       entity.ZoneCentro,
		Latitude:   4.8176,
		Longitude:  -73.6361,
		Phone:      "3100000000",
		Hours:      hours.Schedule{"Lunes": "9:00 AM - 5:00 PM"},
		Tags:       []string{},
		IsApproved: true,
	}
	for _, m := range mutate {
		m(b)
	}

	return b
}

func seedBusinesses(t *testing.T, repo repository.BusinessRepository, businesses ...*entity.Business) {
	t.Helper()
	for _, b := range businesses {
		require.NoError(t, repo.Create(context.Background(), b))
	}
}

func names(list []*entity.Business) []string {
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.Name
	}

	return out
}

func TestBusinessRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository(newTestDB(t))

	b := newBusiness("Pizzería Don Luis", func(b *entity.Business) {
		b.Rating = ptr(4.5)
		b.ReviewCount = ptr(12)
		b.PriceTier = ptr(entity.PriceTierMedium)
		b.Tags = []string{"Pizza", "Domicilios"}
	})
	require.NoError(t, repo.Create(ctx, b))
	require.NotEqual(t, uuid.Nil, b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	got, err := repo.FindApprovedByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.Name, got.Name)
	assert.Equal(t, entity.CategoryRestaurants, got.Category)
	assert.Equal(t, entity.ZoneCentro, got.Zone)
	assert.InDelta(t, 4.5, *got.Rating, 0.0001)
	assert.Equal(t, 12, *got.ReviewCount)
	assert.Equal(t, entity.PriceTierMedium, *got.PriceTier)
	assert.Equal(t, hours.Schedule{"Lunes": "9:00 AM - 5:00 PM"}, got.Hours)
	assert.Equal(t, []string{"Pizza", "Domicilios"}, got.Tags)
}

func TestBusinessRepository_OptionalFieldsStayNil(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository(newTestDB(t))

	b := newBusiness("Sin calificación")
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.ReviewCount)
	assert.Nil(t, got.PriceTier)
}

func TestBusinessRepository_UnapprovedIsHiddenFromPublicReads(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository(newTestDB(t))

	pending := newBusiness("Pendiente", func(b *entity.Business) { b.IsApproved = false })
	seedBusinesses(t, repo, pending, newBusiness("Publicado"))

	_, err := repo.FindApprovedByID(ctx, pending.ID)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)

	found, err := repo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.False(t, found.IsApproved)

	list, _, err := repo.ListApproved(ctx, filter.Criteria{}, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Publicado"}, names(list))

	pendingList, err := repo.ListPending(ctx, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pendiente"}, names(pendingList))
}

func TestBusinessRepository_ListApprovedFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository(newTestDB(t))

	seedBusinesses(t, repo,
		newBusiness("La Esquina", func(b *entity.Business) {
			b.Tags = []string{"Pizza"}
			b.Rating = ptr(4.2)
			b.PriceTier = ptr(entity.PriceTierLow)
		}),
		newBusiness("Café del Parque", func(b *entity.Business) {
			b.Category = entity.CategoryCafes
			b.Description = "Tinto y pandebono"
			b.Zone = entity.ZoneAlrededor
		}),
		newBusiness("Droguería 100%", func(b *entity.Business) {
			b.Category = entity.CategoryHealth
			b.Rating = ptr(2.0)
		}),
	)

	tests := []struct {
		name     string
		criteria filter.Criteria
		want     []string
	}{
		{"no criteria", filter.Criteria{}, []string{"Café del Parque", "Droguería 100%", "La Esquina"}},
		{"category", filter.Criteria{Category: ptr(entity.CategoryHealth)}, []string{"Droguería 100%"}},
		{"zone", filter.Criteria{Zone: ptr(entity.ZoneAlrededor)}, []string{"Café del Parque"}},
		{"min rating skips unrated", filter.Criteria{MinRating: ptr(3.0)}, []string{"La Esquina"}},
		{"price tier", filter.Criteria{PriceTier: ptr(entity.PriceTierLow)}, []string{"La Esquina"}},
		{"query on tag", filter.State{Query: ptr("PIZZA")}.Criteria(), []string{"La Esquina"}},
		{"query on description", filter.State{Query: ptr("pandebono")}.Criteria(), []string{"Café del Parque"}},
		{"query on category label", filter.State{Query: ptr("salud")}.Criteria(), []string{"Droguería 100%"}},
		{"wildcards are literal", filter.State{Query: ptr("100%")}.Criteria(), []string{"Droguería 100%"}},
		{"underscore is literal", filter.State{Query: ptr("_")}.Criteria(), []string{}},
		{"query on accent-free category label", filter.State{Query: ptr("cafeterias")}.Criteria(), []string{"Café del Parque"}},
		{"quote matches no tag", filter.State{Query: ptr(`"`)}.Criteria(), []string{}},
		{"comma matches no tag", filter.State{Query: ptr(",")}.Criteria(), []string{}},
		{"bracket matches no tag", filter.State{Query: ptr("[")}.Criteria(), []string{}},
		{
			"query combined with category",
			filter.Criteria{Category: ptr(entity.CategoryCafes), Query: "pizza"},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, hasMore, err := repo.ListApproved(ctx, tt.criteria, repository.Page{Limit: 10})
			require.NoError(t, err)
			assert.False(t, hasMore)
			assert.Equal(t, tt.want, names(list))
		})
	}
}

func TestBusinessRepository_ListApprovedPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository(newTestDB(t))

	seedBusinesses(t, repo, newBusiness("Banco"), newBusiness("Ñapa"), newBusiness("Álamo"), newBusiness("Nogal"))

	page := repository.Page{Limit: 2}
	first, hasMore, err := repo.ListApproved(ctx, filter.Criteria{}, page)
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Equal(t, []string{"Álamo", "Banco"}, names(first))

	second, hasMore, err := repo.ListApproved(ctx, filter.Criteria{}, page.Next())
	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Equal(t, []string{"Nogal", "Ñapa"}, names(second))
}

func TestMigrate_BackfillsSortKey(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBusinessRepository(db)

	seedBusinesses(t, repo, newBusiness("Zapatería"), newBusiness("Álamo"))
	require.NoError(t, db.Exec("UPDATE businesses SET sort_key = ''").Error)

	require.NoError(t, Migrate(db))

	list, _, err := repo.ListApproved(ctx, filter.Criteria{}, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Álamo", "Zapatería"}, names(list))
}

func TestBusinessRepository_ListApprovedWithin(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository(newTestDB(t))

	seedBusinesses(t, repo,
		newBusiness("Cerca"),
		newBusiness("Lejos", func(b *entity.Business) { b.Latitude = 4.60; b.Longitude = -74.08 }),
	)

	bound := orb.Bound{Min: orb.Point{-73.65, 4.80}, Max: orb.Point{-73.62, 4.83}}
	list, err := repo.ListApprovedWithin(ctx, bound, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cerca"}, names(list))
}

func TestBusinessRepository_ListApprovedWithinClosestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepository(newTestDB(t))
	bound := orb.Bound{Min: orb.Point{-73.65, 4.80}, Max: orb.Point{-73.62, 4.83}}
	center := bound.Center()

	for i := range 150 {
		seedBusinesses(t, repo, newBusiness(fmt.Sprintf("Borde %03d", i), func(b *entity.Business) {
			b.Latitude = bound.Max.Lat() - 0.001
			b.Longitude = bound.Min.Lon() + 0.0002*float64(i%100)
		}))
	}
	seedBusinesses(t, repo,
		newBusiness("Segundo", func(b *entity.Business) { b.Latitude, b.Longitude = center.Lat()+0.002, center.Lon() }),
		newBusiness("Centro", func(b *entity.Business) { b.Latitude, b.Longitude = center.Lat(), center.Lon() }),
	)

	list, err := repo.ListApprovedWithin(ctx, bound, 100)
	require.NoError(t, err)
	require.Len(t, list, 100)
	assert.Equal(t, []string{"Centro", "Segundo"}, names(list[:2]))
}

// Both repositories must answer every search with the same businesses.
func TestBusinessRepository_SearchAgreesWithMemory(t *testing.T) {
	ctx := context.Background()
	gormRepo := NewBusinessRepository(newTestDB(t))
	memRepo := memory.NewBusinessRepository()

	fixtures := []func() *entity.Business{
		func() *entity.Business {
			return newBusiness("Pizzería Napoli", func(b *entity.Business) {
				b.Tags = []string{"pizza", "pasta"}
				b.Rating = ptr(4.6)
			})
		},
		func() *entity.Business {
			return newBusiness("El Tinto", func(b *entity.Business) {
				b.Category = entity.CategoryCafes
				b.Description = "Café de origen"
				b.Rating = ptr(1.0)
			})
		},
		func() *entity.Business {
			return newBusiness("Droguería 100%", func(b *entity.Business) { b.Category = entity.CategoryHealth })
		},
	}
	for _, f := range fixtures {
		seedBusinesses(t, gormRepo, f())
		seedBusinesses(t, memRepo, f())
	}

	queries := []string{"pizza", "PASTA", `a","p`, ",", `"`, "[", "cafeterias", "cafeterías", "salud", "100%", "_", "origen", "zzz"}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			criteria := filter.State{Query: ptr(q)}.Criteria()

			remote, _, err := gormRepo.ListApproved(ctx, criteria, repository.Page{Limit: 10})
			require.NoError(t, err)
			local, _, err := memRepo.ListApproved(ctx, criteria, repository.Page{Limit: 10})
			require.NoError(t, err)

			assert.Equal(t, names(local), names(remote))
		})
	}
}

func TestBusinessRepository_ApproveAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBusinessRepository(db)
	submissions := NewSubmissionRepository(db)

	b := newBusiness("Nuevo", func(b *entity.Business) { b.IsApproved = false })
	seedBusinesses(t, repo, b)
	require.NoError(t, submissions.Create(ctx, &entity.Submission{BusinessID: b.ID, SpecialRequest: "Destacar"}))

	require.NoError(t, repo.SetApproved(ctx, b.ID))
	got, err := repo.FindApprovedByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.IsApproved)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)

	sub, err := submissions.FindByBusinessID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, sub)

	assert.ErrorIs(t, repo.SetApproved(ctx, uuid.New()), repository.ErrBusinessNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), repository.ErrBusinessNotFound)
}
