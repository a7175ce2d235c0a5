package filter

import "directorio/internal/domain/entity"

// Flags tell a client which optional sections are worth rendering for a result set.
type Flags struct {
	HasRatings     bool `json:"has_ratings"`
	HasPriceRanges bool `json:"has_price_ranges"`
}

// Summarize derives Flags from the current result set.
func Summarize(list []*entity.Business) Flags {
	var f Flags
	for _, b := range list {
		if b.Rating != nil && *b.Rating > 0 {
			f.HasRatings = true
		}
		if b.PriceTier != nil && b.PriceTier.IsValid() {
			f.HasPriceRanges = true
		}
		if f.HasRatings && f.HasPriceRanges {
			break
		}
	}

	return f
}
