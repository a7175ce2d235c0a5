package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromotionModel is the GORM-specific struct for the 'promotions' table.
type PromotionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	ImageURL     string    `gorm:"type:varchar(500);not null;default:''"`
	LinkURL      string    `gorm:"type:varchar(500);not null;default:''"`
	StartsAt     *time.Time
	EndsAt       *time.Time
	IsActive     bool `gorm:"not null;default:true;index"`
	DisplayOrder int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}

// BeforeCreate assigns the primary key.
func (m *PromotionModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
