// Package model contains the GORM table structs.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// newID returns a time-ordered UUID so primary keys sort by creation on every driver.
func newID(id uuid.UUID) (uuid.UUID, error) {
	if id != uuid.Nil {
		return id, nil
	}

	v7, err := uuid.NewV7()

	return v7, errors.Wrap(err, "failed to generate id")
}

// All returns every model for AutoMigrate, parents before children.
func All() []any {
	return []any{
		&BusinessModel{},
		&SubmissionModel{},
		&InquiryModel{},
		&PromotionModel{},
		&ModeratorModel{},
	}
}
