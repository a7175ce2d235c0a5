// Package validation runs struct-tag validation and reports violations in Spanish.
package validation

import (
	"reflect"
	"strings"

	domainerrors "directorio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps go-playground/validator with JSON field names.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that names fields after their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Struct validates s. Rule violations come back as *errors.ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validation could not run")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

// fieldPath drops the struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Correo electrónico no válido"
	case "url", "http_url":
		return "Dirección web no válida"
	case "latitude":
		return "La latitud debe estar entre -90 y 90"
	case "longitude":
		return "La longitud debe estar entre -180 y 180"
	case "max":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return "Máximo " + fe.Param() + " elementos"
		}

		return "Máximo " + fe.Param() + " caracteres"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return "Mínimo " + fe.Param() + " elementos"
		}

		return "Mínimo " + fe.Param() + " caracteres"
	case "oneof":
		return "Debe ser uno de: " + fe.Param()
	default:
		return "Valor no válido"
	}
}
