package entity

import (
	"time"

	"directorio/internal/domain/hours"

	"github.com/google/uuid"
)

// Business is a directory entry. IsOpen is derived on read and never stored.
type Business struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`

	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Zone      Zone    `json:"zone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`

	Rating      *float64   `json:"rating"`
	ReviewCount *int       `json:"review_count"`
	PriceTier   *PriceTier `json:"price_range"`

	Hours hours.Schedule `json:"hours"`
	Tags  []string       `json:"tags"`

	IsApproved bool `json:"is_approved"`
	IsOpen     bool `json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayImage returns the stored image or the category placeholder.
func (b *Business) DisplayImage() string {
	if b.ImageURL != "" {
		return b.ImageURL
	}

	return b.Category.PlaceholderImage()
}
