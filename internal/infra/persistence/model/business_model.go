package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null;index"`
	SortKey     string    `gorm:"type:text;not null;default:'';index"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Description string    `gorm:"type:text;not null;default:''"`
	ImageURL    string    `gorm:"type:varchar(500);not null;default:''"`

	Address   string  `gorm:"type:varchar(300);not null"`
	City      string  `gorm:"type:varchar(100);not null"`
	State     string  `gorm:"type:varchar(100);not null"`
	ZipCode   string  `gorm:"type:varchar(20);not null"`
	Zone      string  `gorm:"type:varchar(30);not null;index"`
	Latitude  float64 `gorm:"not null;default:0"`
	Longitude float64 `gorm:"not null;default:0"`

	Phone   string `gorm:"type:varchar(50);not null"`
	Email   string `gorm:"type:varchar(255);not null;default:''"`
	Website string `gorm:"type:varchar(500);not null;default:''"`

	Rating      *float64
	ReviewCount *int
	PriceRange  *string `gorm:"type:varchar(4)"`

	Hours datatypes.JSONType[map[string]string] `gorm:"not null"`
	Tags  datatypes.JSONSlice[string]           `gorm:"not null"`

	IsApproved bool `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// BeforeCreate assigns the primary key.
func (m *BusinessModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
