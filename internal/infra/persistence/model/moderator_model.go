package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModeratorModel is the GORM-specific struct for the 'moderators' table.
type ModeratorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(200);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ModeratorModel) TableName() string {
	return "moderators"
}

// BeforeCreate assigns the primary key.
func (m *ModeratorModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
