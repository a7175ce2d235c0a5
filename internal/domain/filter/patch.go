package filter

import (
	"encoding/json"
	"math"
	"strings"

	"directorio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Field is one dimension of a Patch. An unset field is left untouched by Merge;
// a set field with a nil Value clears the dimension.
type Field[T any] struct {
	Set   bool
	Value *T
}

// Set returns a field that constrains the dimension to v.
func Set[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Clear returns a field that removes the constraint.
func Clear[T any]() Field[T] {
	return Field[T]{Set: true}
}

// UnmarshalJSON is only called for keys present in the document, so presence marks the field set
// and null clears it.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = nil

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.WithStack(err)
	}
	f.Value = &v

	return nil
}

// MarshalJSON writes the value or null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}

	data, err := json.Marshal(*f.Value)

	return data, errors.WithStack(err)
}

func (f Field[T]) apply(dst **T) {
	if !f.Set {
		return
	}
	*dst = clonePtr(f.Value)
}

// Patch is a partial filter update.
type Patch struct {
	Category  Field[entity.Category]  `json:"category"`
	Zone      Field[entity.Zone]      `json:"location"`
	MinRating Field[float64]          `json:"min_rating"`
	PriceTier Field[entity.PriceTier] `json:"price_range"`
	Query     Field[string]           `json:"search_query"`
}

// Violation describes one invalid patch field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate reports every field whose value is outside its enumeration or bounds.
func (p Patch) Validate() []Violation {
	var out []Violation

	if v := p.Category.Value; v != nil {
		if c, ok := entity.ParseCategory(string(*v)); ok {
			*v = c
		} else {
			out = append(out, Violation{Field: "category", Message: "Categoría no válida"})
		}
	}
	if v := p.Zone.Value; v != nil {
		if z, ok := entity.ParseZone(string(*v)); ok {
			*v = z
		} else {
			out = append(out, Violation{Field: "location", Message: "Ubicación no válida"})
		}
	}
	if v := p.MinRating.Value; v != nil && (math.IsNaN(*v) || *v < 0 || *v > 5) {
		out = append(out, Violation{Field: "min_rating", Message: "La calificación debe estar entre 0 y 5"})
	}
	if v := p.PriceTier.Value; v != nil && !v.IsValid() {
		out = append(out, Violation{Field: "price_range", Message: "Rango de precio no válido"})
	}

	return out
}

// Merge applies patch to state without modifying either.
func Merge(state State, patch Patch) State {
	next := state.Clone()

	patch.Category.apply(&next.Category)
	patch.Zone.apply(&next.Zone)
	patch.MinRating.apply(&next.MinRating)
	patch.PriceTier.apply(&next.PriceTier)
	patch.Query.apply(&next.Query)

	if next.Query != nil && strings.TrimSpace(*next.Query) == "" {
		next.Query = nil
	}

	return next
}
