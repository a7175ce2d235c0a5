// Package filter composes business filter criteria and evaluates them locally or as query parameters.
package filter

import (
	"strings"

	"directorio/internal/domain/entity"
)

// State is the set of active criteria. A nil field leaves that dimension unconstrained.
type State struct {
	Category  *entity.Category  `json:"category"`
	Zone      *entity.Zone      `json:"location"`
	MinRating *float64          `json:"min_rating"`
	PriceTier *entity.PriceTier `json:"price_range"`
	Query     *string           `json:"search_query"`
}

// IsEmpty reports whether no dimension is constrained.
func (s State) IsEmpty() bool {
	return s.Category == nil && s.Zone == nil && s.MinRating == nil && s.PriceTier == nil && s.Query == nil
}

// Clone returns a deep copy so callers cannot mutate the original through its pointers.
func (s State) Clone() State {
	return State{
		Category:  clonePtr(s.Category),
		Zone:      clonePtr(s.Zone),
		MinRating: clonePtr(s.MinRating),
		PriceTier: clonePtr(s.PriceTier),
		Query:     clonePtr(s.Query),
	}
}

// Equal compares the values behind every dimension.
func (s State) Equal(o State) bool {
	return equalPtr(s.Category, o.Category) &&
		equalPtr(s.Zone, o.Zone) &&
		equalPtr(s.MinRating, o.MinRating) &&
		equalPtr(s.PriceTier, o.PriceTier) &&
		equalPtr(s.Query, o.Query)
}

// Criteria carries a State to a remote query.
type Criteria struct {
	Category  *entity.Category
	Zone      *entity.Zone
	MinRating *float64
	PriceTier *entity.PriceTier
	// Query is lower-cased and trimmed.
	Query string
	// LabelCategories are the categories whose label contains Query.
	LabelCategories []entity.Category
}

// Criteria converts the state into repository query parameters.
func (s State) Criteria() Criteria {
	c := Criteria{
		Category:  clonePtr(s.Category),
		Zone:      clonePtr(s.Zone),
		MinRating: clonePtr(s.MinRating),
		PriceTier: clonePtr(s.PriceTier),
	}
	if s.Query != nil {
		c.Query = strings.ToLower(strings.TrimSpace(*s.Query))
		c.LabelCategories = entity.CategoriesMatchingLabel(c.Query)
	}

	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
