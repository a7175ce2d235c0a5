package repository

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInquiryNotFound is returned when no inquiry has the given ID.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository stores chat requests for moderators.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error

	// List returns inquiries newest first. An empty status lists every inquiry.
	List(ctx context.Context, status entity.InquiryStatus, page Page) ([]*entity.Inquiry, error)

	MarkHandled(ctx context.Context, id uuid.UUID) error
}
