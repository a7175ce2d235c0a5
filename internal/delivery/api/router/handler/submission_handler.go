package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"directorio/internal/delivery/api/response"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageFormField = "image"

// SubmissionHandlerParams holds dependencies for SubmissionHandler, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
}

// SubmissionHandler accepts businesses proposed by the public.
type SubmissionHandler struct {
	submissionUC usecase.SubmissionUsecase
}

// NewSubmissionHandler is the constructor for SubmissionHandler
func NewSubmissionHandler(params SubmissionHandlerParams) *SubmissionHandler {
	return &SubmissionHandler{submissionUC: params.SubmissionUC}
}

// SubmissionResponse acknowledges a stored submission
type SubmissionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Submit handles POST /api/v1/submissions as JSON or multipart with an optional image.
func (h *SubmissionHandler) Submit(c echo.Context) error {
	var input usecase.SubmissionInput
	if err := bind(c, &input); err != nil {
		return err
	}

	var image *usecase.ImageUpload
	if isMultipart(c) {
		if err := bindJSONFormValues(c, &input); err != nil {
			return err
		}

		upload, closeFn, err := formImage(c)
		if err != nil {
			return err
		}
		defer closeFn()
		image = upload
	}

	business, err := h.submissionUC.Submit(c.Request().Context(), &input, image)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, SubmissionResponse{
		ID:      business.ID.String(),
		Name:    business.Name,
		Message: "¡Gracias! Tu negocio será revisado por un moderador antes de publicarse.",
	})
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// bindJSONFormValues decodes the nested form fields, which travel as JSON strings.
func bindJSONFormValues(c echo.Context, input *usecase.SubmissionInput) error {
	if raw := c.FormValue("days"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Days); err != nil {
			return invalidField("days", "Horario no válido")
		}
	}
	if raw := c.FormValue("hours"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Hours); err != nil {
			return invalidField("hours", "Horario no válido")
		}
	}
	if len(input.Tags) == 1 && strings.Contains(input.Tags[0], ",") {
		input.Tags = strings.Split(input.Tags[0], ",")
	}

	return nil
}

func formImage(c echo.Context) (*usecase.ImageUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, invalidField(imageFormField, "No se pudo leer la imagen")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, invalidField(imageFormField, "No se pudo leer la imagen")
	}

	return &usecase.ImageUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	}, func() { _ = file.Close() }, nil
}
