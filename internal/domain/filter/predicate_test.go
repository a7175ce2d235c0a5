package filter

import (
	"slices"
	"strings"
	"testing"

	"directorio/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func business(name string, mutate ...func(*entity.Business)) *entity.Business {
	b := &entity.Business{
		Name:     name,
		Category: entity.CategoryRestaurants,
		Zone:     entity.ZoneCentro,
	}
	for _, m := range mutate {
		m(b)
	}

	return b
}

func TestState_Matches(t *testing.T) {
	pizzeria := business("La Esquina", func(b *entity.Business) {
		b.Description = "Comida casera"
		b.Tags = []string{"Pizza", "Domicilios"}
		b.Rating = ptr(4.5)
		b.PriceTier = ptr(entity.PriceTierMedium)
	})
	farmacia := business("Droguería Central", func(b *entity.Business) {
		b.Category = entity.CategoryHealth
		b.Zone = entity.ZoneVeredas
	})
	cafe := business("El Tinto", func(b *entity.Business) { b.Category = entity.CategoryCafes })

	tests := []struct {
		name  string
		state State
		b     *entity.Business
		want  bool
	}{
		{"empty state matches everything", State{}, farmacia, true},
		{"category exact", State{Category: ptr(entity.CategoryHealth)}, farmacia, true},
		{"category mismatch", State{Category: ptr(entity.CategoryHealth)}, pizzeria, false},
		{"zone exact", State{Zone: ptr(entity.ZoneVeredas)}, farmacia, true},
		{"zone mismatch", State{Zone: ptr(entity.ZoneAlrededor)}, farmacia, false},
		{"rating at threshold", State{MinRating: ptr(4.5)}, pizzeria, true},
		{"rating below threshold", State{MinRating: ptr(4.6)}, pizzeria, false},
		{"absent rating never matches", State{MinRating: ptr(0.0)}, farmacia, false},
		{"price tier exact", State{PriceTier: ptr(entity.PriceTierMedium)}, pizzeria, true},
		{"price tier mismatch", State{PriceTier: ptr(entity.PriceTierLow)}, pizzeria, false},
		{"absent price tier never matches", State{PriceTier: ptr(entity.PriceTierLow)}, farmacia, false},
		{"query matches tag case-insensitively", State{Query: ptr("pizza")}, pizzeria, true},
		{"query matches part of a tag", State{Query: ptr("domicil")}, pizzeria, true},
		{"query matches name", State{Query: ptr("droguería")}, farmacia, true},
		{"query matches description", State{Query: ptr("CASERA")}, pizzeria, true},
		{"query matches category label", State{Query: ptr("salud")}, farmacia, true},
		{"category label ignores accents", State{Query: ptr("cafeterias")}, cafe, true},
		{"category label with accent", State{Query: ptr("Cafeterías")}, cafe, true},
		{"query never spans two tags", State{Query: ptr(`a","p`)}, pizzeria, false},
		{"json punctuation is not a tag", State{Query: ptr(",")}, pizzeria, false},
		{"query misses", State{Query: ptr("pizza")}, farmacia, false},
		{
			"dimensions are AND-ed",
			State{Category: ptr(entity.CategoryRestaurants), Query: ptr("pizza"), Zone: ptr(entity.ZoneVeredas)},
			pizzeria,
			false,
		},
		{"nil business", State{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Matches(tt.b))
		})
	}
}

func TestMinRatingSkipsUnratedButFlagsRatings(t *testing.T) {
	a := business("A")
	b := business("B", func(b *entity.Business) { b.Rating = ptr(4.2) })

	store := NewStore(State{})
	store.SetFilter(Patch{MinRating: Set(3.0)})

	got := store.Active().Apply([]*entity.Business{a, b})

	assert.Equal(t, []*entity.Business{b}, got)
	assert.True(t, Summarize(got).HasRatings)
	assert.True(t, Summarize([]*entity.Business{a, b}).HasRatings)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		list []*entity.Business
		want Flags
	}{
		{"empty", nil, Flags{}},
		{"zero rating is not meaningful", []*entity.Business{business("x", func(b *entity.Business) { b.Rating = ptr(0.0) })}, Flags{}},
		{
			"both",
			[]*entity.Business{
				business("x", func(b *entity.Business) { b.Rating = ptr(3.0) }),
				business("y", func(b *entity.Business) { b.PriceTier = ptr(entity.PriceTierLow) }),
			},
			Flags{HasRatings: true, HasPriceRanges: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.list))
		})
	}
}

func TestSortByName(t *testing.T) {
	list := []*entity.Business{
		business("zapatería Luz"),
		business("Ñapa Express"),
		business("Álamo Café"),
		business("alcaldía"),
		business("Banco"),
	}

	SortByName(list)

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"Álamo Café", "alcaldía", "Banco", "Ñapa Express", "zapatería Luz"}, names)
}

func TestNameSortKey_OrdersLikeSortByName(t *testing.T) {
	names := []string{"zapatería Luz", "Ñapa Express", "Álamo Café", "alcaldía", "Banco", "Nogal"}

	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(NameSortKey(a), NameSortKey(b))
	})

	assert.Equal(t, []string{"Álamo Café", "alcaldía", "Banco", "Nogal", "Ñapa Express", "zapatería Luz"}, names)
}
