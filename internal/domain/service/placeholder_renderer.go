package service

import "directorio/internal/domain/entity"

// PlaceholderRenderer draws the default image of a category.
type PlaceholderRenderer interface {
	// Render returns a PNG.
	Render(category entity.Category) ([]byte, error)
}
