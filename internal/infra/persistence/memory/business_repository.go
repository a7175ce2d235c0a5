// Package memory holds an in-process BusinessRepository that filters with the local predicate.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// BusinessRepository keeps businesses in a map. Returned values are copies.
type BusinessRepository struct {
	mu         sync.RWMutex
	businesses map[uuid.UUID]*entity.Business
	now        func() time.Time
}

// NewBusinessRepository creates an empty repository.
func NewBusinessRepository() *BusinessRepository {
	return &BusinessRepository{
		businesses: make(map[uuid.UUID]*entity.Business),
		now:        time.Now,
	}
}

var _ repository.BusinessRepository = (*BusinessRepository)(nil)

// ListApproved applies filter.State.Matches to every approved business.
func (r *BusinessRepository) ListApproved(_ context.Context, criteria filter.Criteria, page repository.Page) ([]*entity.Business, bool, error) {
	state := stateFromCriteria(criteria)

	r.mu.RLock()
	matched := make([]*entity.Business, 0, len(r.businesses))
	for _, b := range r.businesses {
		if b.IsApproved && state.Matches(b) {
			matched = append(matched, clone(b))
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *entity.Business) int {
		if c := strings.Compare(filter.NameSortKey(a.Name), filter.NameSortKey(b.Name)); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	if page.Offset >= len(matched) {
		return []*entity.Business{}, false, nil
	}
	end := min(page.Offset+page.Limit, len(matched))

	return matched[page.Offset:end], end < len(matched), nil
}

func stateFromCriteria(c filter.Criteria) filter.State {
	s := filter.State{
		Category:  c.Category,
		Zone:      c.Zone,
		MinRating: c.MinRating,
		PriceTier: c.PriceTier,
	}
	if c.Query != "" {
		q := c.Query
		s.Query = &q
	}

	return s
}

func (r *BusinessRepository) FindApprovedByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	b, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsApproved {
		return nil, repository.ErrBusinessNotFound
	}

	return b, nil
}

func (r *BusinessRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrBusinessNotFound
	}

	return clone(b), nil
}

// ListApprovedWithin returns approved businesses inside bound, closest to its centre first.
func (r *BusinessRepository) ListApprovedWithin(_ context.Context, bound orb.Bound, limit int) ([]*entity.Business, error) {
	r.mu.RLock()
	var out []*entity.Business
	for _, b := range r.businesses {
		if b.IsApproved && bound.Contains(orb.Point{b.Longitude, b.Latitude}) {
			out = append(out, clone(b))
		}
	}
	r.mu.RUnlock()

	center := bound.Center()
	slices.SortFunc(out, func(a, b *entity.Business) int {
		da := geo.Distance(center, orb.Point{a.Longitude, a.Latitude})
		db := geo.Distance(center, orb.Point{b.Longitude, b.Latitude})
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return out[:min(limit, len(out))], nil
}

func (r *BusinessRepository) Create(_ context.Context, business *entity.Business) error {
	if business == nil {
		return errors.New("nil business")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if business.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate id")
		}
		business.ID = id
	}
	now := r.now()
	business.CreatedAt = now
	business.UpdatedAt = now
	r.businesses[business.ID] = clone(business)

	return nil
}

func (r *BusinessRepository) ListPending(_ context.Context, page repository.Page) ([]*entity.Business, error) {
	r.mu.RLock()
	var pending []*entity.Business
	for _, b := range r.businesses {
		if !b.IsApproved {
			pending = append(pending, clone(b))
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(pending, func(a, b *entity.Business) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	if page.Offset >= len(pending) {
		return []*entity.Business{}, nil
	}

	return pending[page.Offset:min(page.Offset+page.Limit, len(pending))], nil
}

func (r *BusinessRepository) SetApproved(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.businesses[id]
	if !ok {
		return repository.ErrBusinessNotFound
	}
	b.IsApproved = true
	b.UpdatedAt = r.now()

	return nil
}

func (r *BusinessRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.businesses[id]; !ok {
		return repository.ErrBusinessNotFound
	}
	delete(r.businesses, id)

	return nil
}

// Len returns the number of stored businesses.
func (r *BusinessRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.businesses)
}

func clone(b *entity.Business) *entity.Business {
	c := *b
	c.Tags = slices.Clone(b.Tags)
	if b.Hours != nil {
		c.Hours = make(map[string]string, len(b.Hours))
		for k, v := range b.Hours {
			c.Hours[k] = v
		}
	}
	if b.Rating != nil {
		v := *b.Rating
		c.Rating = &v
	}
	if b.ReviewCount != nil {
		v := *b.ReviewCount
		c.ReviewCount = &v
	}
	if b.PriceTier != nil {
		v := *b.PriceTier
		c.PriceTier = &v
	}

	return &c
}
