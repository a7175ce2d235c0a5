package handler

import (
	"strconv"
	"strings"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func invalidField(field, message string) error {
	return errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldViolation{Field: field, Message: message}))
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidField(name, "Identificador no válido")
	}

	return id, nil
}

// pageFromQuery reads limit and offset. Zero values leave the defaults to the service.
func pageFromQuery(c echo.Context) (repository.Page, error) {
	var page repository.Page
	var violations []domainerrors.FieldViolation

	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			violations = append(violations, domainerrors.FieldViolation{Field: "limit", Message: "Debe ser un entero positivo"})
		}
		page.Limit = n
	}
	if raw := c.QueryParam("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			violations = append(violations, domainerrors.FieldViolation{Field: "offset", Message: "Debe ser un entero positivo"})
		}
		page.Offset = n
	}

	if len(violations) > 0 {
		return repository.Page{}, errors.WithStack(domainerrors.NewValidationError(violations...))
	}

	return page, nil
}

// patchFromQuery turns the filter query parameters into a patch. Absent parameters stay unset.
func patchFromQuery(c echo.Context) (filter.Patch, error) {
	var patch filter.Patch

	if v := c.QueryParam("category"); v != "" {
		patch.Category = filter.Set(entity.Category(v))
	}
	if v := c.QueryParam("location"); v != "" {
		patch.Zone = filter.Set(entity.Zone(v))
	}
	if v := c.QueryParam("price_range"); v != "" {
		patch.PriceTier = filter.Set(entity.PriceTier(v))
	}
	if v := c.QueryParam("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter.Patch{}, invalidField("min_rating", "La calificación debe ser un número")
		}
		patch.MinRating = filter.Set(rating)
	}

	query := c.QueryParam("search_query")
	if query == "" {
		query = c.QueryParam("q")
	}
	if strings.TrimSpace(query) != "" {
		patch.Query = filter.Set(query)
	}

	return patch, nil
}

// stateFromPatch validates patch and applies it to the empty state.
func stateFromPatch(patch filter.Patch) (filter.State, error) {
	if violations := patch.Validate(); len(violations) > 0 {
		fields := make([]domainerrors.FieldViolation, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, domainerrors.FieldViolation{Field: v.Field, Message: v.Message})
		}

		return filter.State{}, errors.WithStack(domainerrors.NewValidationError(fields...))
	}

	return filter.Merge(filter.State{}, patch), nil
}

func stateFromQuery(c echo.Context) (filter.State, error) {
	patch, err := patchFromQuery(c)
	if err != nil {
		return filter.State{}, err
	}

	return stateFromPatch(patch)
}

func floatQuery(c echo.Context, name string, required bool) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		if required {
			return 0, invalidField(name, "Este campo es obligatorio")
		}

		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidField(name, "Debe ser un número")
	}

	return v, nil
}

// bind decodes the request body, reporting malformed input as INVALID_INPUT.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(err.Error()))
	}

	return nil
}
