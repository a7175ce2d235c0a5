package filter

import (
	"slices"
	"strings"

	"directorio/internal/domain/entity"
)

// Matches reports whether b satisfies every constrained dimension.
func (s State) Matches(b *entity.Business) bool {
	if b == nil {
		return false
	}
	if s.Category != nil && b.Category != *s.Category {
		return false
	}
	if s.Zone != nil && b.Zone != *s.Zone {
		return false
	}
	if s.MinRating != nil && (b.Rating == nil || *b.Rating < *s.MinRating) {
		return false
	}
	if s.PriceTier != nil && (b.PriceTier == nil || *b.PriceTier != *s.PriceTier) {
		return false
	}
	if s.Query != nil && !matchesQuery(b, *s.Query) {
		return false
	}

	return true
}

// Apply returns the businesses of list that match s, preserving order.
func (s State) Apply(list []*entity.Business) []*entity.Business {
	out := make([]*entity.Business, 0, len(list))
	for _, b := range list {
		if s.Matches(b) {
			out = append(out, b)
		}
	}

	return out
}

func matchesQuery(b *entity.Business, query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}

	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), needle)
	}

	if contains(b.Name) || contains(b.Description) {
		return true
	}
	if slices.Contains(entity.CategoriesMatchingLabel(needle), b.Category) {
		return true
	}
	for _, tag := range b.Tags {
		if contains(tag) {
			return true
		}
	}

	return false
}
