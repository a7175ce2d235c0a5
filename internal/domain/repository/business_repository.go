// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/filter"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when no business matches the lookup.
	ErrBusinessNotFound = errors.New("business not found")
)

// Page selects a window of an ordered result set.
type Page struct {
	Limit  int
	Offset int
}

// Next returns the page that follows p.
func (p Page) Next() Page {
	return Page{Limit: p.Limit, Offset: p.Offset + p.Limit}
}

// BusinessRepository is the remote query interface of the directory.
type BusinessRepository interface {
	// ListApproved returns approved businesses matching criteria ordered by name.
	// hasMore reports whether another page exists.
	ListApproved(ctx context.Context, criteria filter.Criteria, page Page) (items []*entity.Business, hasMore bool, err error)

	// FindApprovedByID returns ErrBusinessNotFound for unknown or unapproved businesses.
	FindApprovedByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByID ignores the approval state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// ListApprovedWithin returns approved businesses whose coordinates fall inside bound,
	// closest to the centre of bound first, so limit never drops a nearer business.
	ListApprovedWithin(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Business, error)

	// Create persists a new business, assigning ID and timestamps.
	Create(ctx context.Context, business *entity.Business) error

	// ListPending returns unapproved businesses, oldest first.
	ListPending(ctx context.Context, page Page) ([]*entity.Business, error)

	// SetApproved marks a business as publicly listed.
	SetApproved(ctx context.Context, id uuid.UUID) error

	// Delete removes a business and its submission rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
