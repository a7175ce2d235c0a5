package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionModel is the GORM-specific struct for the 'submissions' table.
type SubmissionModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SpecialRequest string    `gorm:"type:text;not null;default:''"`
	ContactName    string    `gorm:"type:varchar(200);not null;default:''"`
	ContactEmail   string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "submissions"
}

// BeforeCreate assigns the primary key.
func (m *SubmissionModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
