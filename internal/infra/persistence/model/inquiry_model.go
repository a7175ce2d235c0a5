package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InquiryModel is the GORM-specific struct for the 'inquiries' table.
type InquiryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Message   string    `gorm:"type:text;not null"`
	Contact   string    `gorm:"type:varchar(255);not null;default:''"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time `gorm:"index"`
	HandledAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}

// BeforeCreate assigns the primary key.
func (m *InquiryModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
