package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/filter"
	"directorio/internal/domain/repository"
	"directorio/internal/usecase"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	toolSearchBusinesses = "search_businesses"
	toolGetBusiness      = "get_business"
	toolListCategories   = "list_categories"

	defaultToolLimit = 10
	maxToolLimit     = 50
)

// SearchBusinessesRequest is the input of search_businesses
type SearchBusinessesRequest struct {
	Query      string  `json:"query,omitempty" description:"Texto libre buscado en nombre, descripción, dirección y etiquetas"`
	Category   string  `json:"category,omitempty" description:"Categoría: restaurantes, cafeterías, tiendas, servicios, salud, entretenimiento, iglesia, entidad_pública u otros"`
	Location   string  `json:"location,omitempty" description:"Zona: centro, veredas o alrededor"`
	PriceRange string  `json:"price_range,omitempty" description:"Rango de precio: $, $$, $$$ o $$$$"`
	MinRating  float64 `json:"min_rating,omitempty" description:"Calificación mínima entre 0 y 5"`
	Limit      int     `json:"limit,omitempty" description:"Número máximo de resultados"`
}

// GetBusinessRequest is the input of get_business
type GetBusinessRequest struct {
	ID string `json:"id" description:"Identificador del negocio"`
}

// ListCategoriesRequest is the empty input of list_categories
type ListCategoriesRequest struct{}

type directoryTools struct {
	directoryUC usecase.DirectoryUsecase
}

func (t *directoryTools) searchBusinesses(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var in SearchBusinessesRequest
	if err := protocol.VerifyAndUnmarshal(req.RawArguments, &in); err != nil {
		return toolError(err.Error()), nil
	}

	var patch filter.Patch
	if in.Query != "" {
		patch.Query = filter.Set(in.Query)
	}
	if in.Category != "" {
		patch.Category = filter.Set(entity.Category(in.Category))
	}
	if in.Location != "" {
		patch.Zone = filter.Set(entity.Zone(in.Location))
	}
	if in.PriceRange != "" {
		patch.PriceTier = filter.Set(entity.PriceTier(in.PriceRange))
	}
	if in.MinRating > 0 {
		patch.MinRating = filter.Set(in.MinRating)
	}
	if violations := patch.Validate(); len(violations) > 0 {
		return toolError(violations[0].Field + ": " + violations[0].Message), nil
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultToolLimit
	}

	page, err := t.directoryUC.ListBusinesses(ctx, filter.Merge(filter.State{}, patch), repository.Page{Limit: min(limit, maxToolLimit)})
	if err != nil {
		return resultFromError(err)
	}

	return jsonResult(page)
}

func (t *directoryTools) getBusiness(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var in GetBusinessRequest
	if err := protocol.VerifyAndUnmarshal(req.RawArguments, &in); err != nil {
		return toolError(err.Error()), nil
	}

	id, err := uuid.Parse(in.ID)
	if err != nil {
		return toolError("id: Identificador no válido"), nil
	}

	business, err := t.directoryUC.GetBusiness(ctx, id)
	if err != nil {
		return resultFromError(err)
	}

	return jsonResult(business)
}

func (t *directoryTools) listCategories(_ context.Context, _ *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return jsonResult(t.directoryUC.Catalogue())
}

func jsonResult(v any) (*protocol.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			&protocol.TextContent{Type: "text", Text: string(data)},
		},
	}, nil
}

func toolError(message string) *protocol.CallToolResult {
	return &protocol.CallToolResult{
		IsError: true,
		Content: []protocol.Content{
			&protocol.TextContent{Type: "text", Text: message},
		},
	}
}

// resultFromError reports client errors to the model and fails the call on anything else.
func resultFromError(err error) (*protocol.CallToolResult, error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return toolError(appErr.Message()), nil
	}

	return nil, err
}
