package usecase

import (
	"context"
	"io"

	"directorio/internal/domain/entity"
)

// DayHours is one day of the submission form, with times as "HH:MM".
type DayHours struct {
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// SubmissionInput is a business proposed by the public.
type SubmissionInput struct {
	Name        string   `json:"name" form:"name" validate:"required,max=200"`
	Category    string   `json:"category" form:"category" validate:"required"`
	Description string   `json:"description" form:"description" validate:"max=2000"`
	Address     string   `json:"address" form:"address" validate:"required,max=300"`
	City        string   `json:"city" form:"city" validate:"max=100"`
	State       string   `json:"state" form:"state" validate:"max=100"`
	ZipCode     string   `json:"zip_code" form:"zip_code" validate:"max=20"`
	Zone        string   `json:"location" form:"location"`
	Latitude    *float64 `json:"latitude" form:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude" validate:"omitempty,longitude"`
	Phone       string   `json:"phone" form:"phone" validate:"required,max=50"`
	Email       string   `json:"email" form:"email" validate:"omitempty,email"`
	Website     string   `json:"website" form:"website" validate:"omitempty,url"`
	PriceRange  string   `json:"price_range" form:"price_range"`
	Tags        []string `json:"tags" form:"tags" validate:"max=20,dive,max=40"`

	// Days holds the form's per-day toggles. Hours holds ready-made descriptors.
	// Days wins when both are present.
	Days  map[string]DayHours `json:"days"`
	Hours map[string]string   `json:"hours"`

	SpecialRequest string `json:"special_request" form:"special_request" validate:"max=1000"`
	ContactName    string `json:"contact_name" form:"contact_name" validate:"max=200"`
	ContactEmail   string `json:"contact_email" form:"contact_email" validate:"omitempty,email"`
}

// ImageUpload is an optional photo attached to a submission.
type ImageUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// SubmissionUsecase accepts new businesses for moderation
type SubmissionUsecase interface {
	// Submit validates and stores an unapproved business with its submission record
	Submit(ctx context.Context, input *SubmissionInput, image *ImageUpload) (*entity.Business, error)
}
