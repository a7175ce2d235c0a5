package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/hours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "businesses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFixtures(t *testing.T) {
	path := writeFixtures(t, `[
		{
			"name": " Panadería La Espiga ",
			"category": "Cafeterias",
			"price_range": "$",
			"rating": 4.5,
			"hours": {"lunes": "6:00 AM - 7:00 PM", "domingo": "closed"},
			"tags": ["pan", "tinto"]
		},
		{"name": "Vereda Store", "category": "tiendas", "zone": "Veredas"}
	]`)

	businesses, err := loadFixtures(path, hours.LocaleSpanish, true)
	require.NoError(t, err)
	require.Len(t, businesses, 2)

	first := businesses[0]
	assert.Equal(t, "Panadería La Espiga", first.Name)
	assert.Equal(t, entity.CategoryCafes, first.Category)
	assert.Equal(t, entity.ZoneCentro, first.Zone)
	assert.True(t, first.IsApproved)
	require.NotNil(t, first.PriceTier)
	assert.Equal(t, entity.PriceTier("$"), *first.PriceTier)
	assert.Equal(t, hours.Closed, first.Hours["Domingo"])

	assert.Equal(t, entity.ZoneVeredas, businesses[1].Zone)
}

func TestLoadFixtures_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `{`},
		{name: "missing name", content: `[{"category": "salud"}]`},
		{name: "unknown category", content: `[{"name": "X", "category": "bancos"}]`},
		{name: "unknown zone", content: `[{"name": "X", "category": "salud", "zone": "norte"}]`},
		{name: "bad price", content: `[{"name": "X", "category": "salud", "price_range": "$$$$$"}]`},
		{name: "bad rating", content: `[{"name": "X", "category": "salud", "rating": 7}]`},
		{name: "bad hours", content: `[{"name": "X", "category": "salud", "hours": {"Funday": "9:00 AM - 5:00 PM"}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFixtures(writeFixtures(t, tt.content), hours.LocaleSpanish, true)
			require.Error(t, err)
		})
	}
}

func TestDryRunSeed(t *testing.T) {
	businesses := []*entity.Business{
		{Name: "Asadero El Llano", Category: entity.CategoryRestaurants, Zone: entity.ZoneCentro, IsApproved: true},
		{Name: "Pizzería Napoli", Category: entity.CategoryRestaurants, Zone: entity.ZoneCentro, IsApproved: true},
		{Name: "Droguería Central", Category: entity.CategoryHealth, Zone: entity.ZoneCentro, IsApproved: true},
	}

	var out bytes.Buffer
	require.NoError(t, dryRunSeed(context.Background(), &out, businesses))

	assert.Contains(t, out.String(), "3 businesses validated")
	assert.Regexp(t, `Restaurantes\s+2`, out.String())
	assert.Regexp(t, `Salud\s+1`, out.String())
	assert.NotContains(t, out.String(), "Iglesia")
}
