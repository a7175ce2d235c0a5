// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Category is the closed set of business categories.
type Category string

const (
	CategoryRestaurants   Category = "restaurantes"
	CategoryCafes         Category = "cafeterías"
	CategoryShops         Category = "tiendas"
	CategoryServices      Category = "servicios"
	CategoryHealth        Category = "salud"
	CategoryEntertainment Category = "entretenimiento"
	CategoryChurch        Category = "iglesia"
	CategoryPublicEntity  Category = "entidad_pública"
	CategoryOther         Category = "otros"
)

type categoryInfo struct {
	label string
	icon  string
	color [3]uint8
}

//nolint:gochecknoglobals
var categoryTable = map[Category]categoryInfo{
	CategoryRestaurants:   {label: "Restaurantes", icon: "🍽️", color: [3]uint8{0xE5, 0x73, 0x73}},
	CategoryCafes:         {label: "Cafeterías", icon: "☕", color: [3]uint8{0x8D, 0x6E, 0x63}},
	CategoryShops:         {label: "Tiendas", icon: "🛒", color: [3]uint8{0x64, 0xB5, 0xF6}},
	CategoryServices:      {label: "Servicios", icon: "🔧", color: [3]uint8{0x90, 0xA4, 0xAE}},
	CategoryHealth:        {label: "Salud", icon: "⚕️", color: [3]uint8{0x81, 0xC7, 0x84}},
	CategoryEntertainment: {label: "Entretenimiento", icon: "🎭", color: [3]uint8{0xBA, 0x68, 0xC8}},
	CategoryChurch:        {label: "Iglesia", icon: "⛪", color: [3]uint8{0xFF, 0xB7, 0x4D}},
	CategoryPublicEntity:  {label: "Entidad pública", icon: "🏛️", color: [3]uint8{0x4D, 0xB6, 0xAC}},
	CategoryOther:         {label: "Otros", icon: "❓", color: [3]uint8{0xA1, 0x88, 0x7F}},
}

//nolint:gochecknoglobals
var categoryOrder = []Category{
	CategoryRestaurants,
	CategoryCafes,
	CategoryShops,
	CategoryServices,
	CategoryHealth,
	CategoryEntertainment,
	CategoryChurch,
	CategoryPublicEntity,
	CategoryOther,
}

// Categories returns every category in display order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// ParseCategory accepts a tag case-insensitively, with or without accents.
func ParseCategory(s string) (Category, bool) {
	key := foldAccents(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range categoryOrder {
		if foldAccents(string(c)) == key {
			return c, true
		}
	}

	return "", false
}

// CategoriesMatchingLabel returns the categories whose label contains q, ignoring case and accents.
func CategoriesMatchingLabel(q string) []Category {
	needle := foldAccents(strings.ToLower(strings.TrimSpace(q)))
	if needle == "" {
		return nil
	}

	var matched []Category
	for _, c := range categoryOrder {
		if strings.Contains(foldAccents(strings.ToLower(c.Label())), needle) {
			matched = append(matched, c)
		}
	}

	return matched
}

func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a member of the closed set.
func (c Category) IsValid() bool {
	_, ok := categoryTable[c]

	return ok
}

// Label returns the display label.
func (c Category) Label() string {
	return categoryTable[c].label
}

// Icon returns the display icon.
func (c Category) Icon() string {
	return categoryTable[c].icon
}

// Color returns the placeholder background colour.
func (c Category) Color() (r, g, b uint8) {
	rgb := categoryTable[c].color

	return rgb[0], rgb[1], rgb[2]
}

// PlaceholderImage returns the path of the rendered default image.
func (c Category) PlaceholderImage() string {
	return "/api/v1/categories/" + foldAccents(string(c)) + "/placeholder.png"
}

//nolint:gochecknoglobals
var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U", "Ñ", "N",
)

func foldAccents(s string) string {
	return accentFolder.Replace(s)
}
