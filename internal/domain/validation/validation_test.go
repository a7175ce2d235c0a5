package validation

import (
	"testing"

	domainerrors "directorio/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string   `json:"name" validate:"required,max=5"`
	Email   string   `json:"email,omitempty" validate:"omitempty,email"`
	Website string   `json:"website" validate:"omitempty,url"`
	Lat     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Tags    []string `json:"tags" validate:"max=2,dive,max=3"`
	Hidden  string   `json:"-"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()
	badLat := 95.0

	tests := []struct {
		name   string
		input  sample
		fields map[string]string
	}{
		{
			name:  "valid",
			input: sample{Name: "Pan", Email: "a@b.co", Website: "https://gacheta.gov.co"},
		},
		{
			name:   "required",
			input:  sample{},
			fields: map[string]string{"name": "Este campo es obligatorio"},
		},
		{
			name:  "formats",
			input: sample{Name: "Pan", Email: "no-es-correo", Website: "gacheta", Lat: &badLat},
			fields: map[string]string{
				"email":    "Correo electrónico no válido",
				"website":  "Dirección web no válida",
				"latitude": "La latitud debe estar entre -90 y 90",
			},
		},
		{
			name:  "lengths",
			input: sample{Name: "Panadería", Tags: []string{"a", "b", "c"}},
			fields: map[string]string{
				"name": "Máximo 5 caracteres",
				"tags": "Máximo 2 elementos",
			},
		},
		{
			name:   "dive",
			input:  sample{Name: "Pan", Tags: []string{"pizza"}},
			fields: map[string]string{"tags[0]": "Máximo 3 caracteres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if len(tt.fields) == 0 {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var verr *domainerrors.ValidationError
			require.ErrorAs(t, err, &verr)

			got := make(map[string]string)
			for _, fv := range verr.Violations() {
				got[fv.Field] = fv.Message
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}
