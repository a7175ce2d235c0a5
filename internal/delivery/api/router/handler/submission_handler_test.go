package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	mockUsecase "directorio/internal/mocks/usecase"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSubmissionHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockSubmissionUsecase) {
	uc := mockUsecase.NewMockSubmissionUsecase(t)
	h := NewSubmissionHandler(SubmissionHandlerParams{SubmissionUC: uc})

	e := newTestEcho()
	e.POST("/submissions", h.Submit)

	return e, uc
}

func TestSubmissionHandler_SubmitJSON(t *testing.T) {
	e, uc := setupSubmissionHandler(t)
	id := uuid.New()

	uc.EXPECT().
		Submit(mock.Anything,
			mock.MatchedBy(func(in *usecase.SubmissionInput) bool {
				return in.Name == "Panadería La Espiga" && in.Days["lunes"].IsOpen && in.Days["lunes"].OpenTime == "06:00"
			}),
			(*usecase.ImageUpload)(nil)).
		Return(&entity.Business{ID: id, Name: "Panadería La Espiga"}, nil)

	body := `{
		"name": "Panadería La Espiga",
		"category": "tiendas",
		"address": "Calle 4 # 3-20",
		"phone": "3001112233",
		"days": {"lunes": {"is_open": true, "open_time": "06:00", "close_time": "19:00"}}
	}`
	rec := doRequest(e, http.MethodPost, "/submissions", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), id.String())
	assert.Contains(t, string(env.Data), "revisado por un moderador")
}

func TestSubmissionHandler_SubmitMultipart(t *testing.T) {
	e, uc := setupSubmissionHandler(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("name", "Café Gachetá"))
	require.NoError(t, form.WriteField("category", "cafeterías"))
	require.NoError(t, form.WriteField("tags", "café,postres"))
	require.NoError(t, form.WriteField("hours", `{"sábado":"8:00 AM - 6:00 PM"}`))
	part, err := form.CreateFormFile("image", "fachada.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	uc.EXPECT().
		Submit(mock.Anything,
			mock.MatchedBy(func(in *usecase.SubmissionInput) bool {
				return in.Name == "Café Gachetá" &&
					assert.ObjectsAreEqual([]string{"café", "postres"}, in.Tags) &&
					in.Hours["sábado"] == "8:00 AM - 6:00 PM"
			}),
			mock.MatchedBy(func(img *usecase.ImageUpload) bool {
				return img != nil && img.Filename == "fachada.png" && img.Size == 8
			})).
		Return(&entity.Business{ID: uuid.New(), Name: "Café Gachetá"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/submissions", &buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSubmissionHandler_SubmitErrors(t *testing.T) {
	e, uc := setupSubmissionHandler(t)

	uc.EXPECT().
		Submit(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldViolation{Field: "phone", Message: "Este campo es obligatorio"})))

	rec := doRequest(e, http.MethodPost, "/submissions", `{"name":"Sin teléfono"}`)
	env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, string(env.Error.Details), `"field":"phone"`)

	rec = doRequest(e, http.MethodPost, "/submissions", `{"name":`)
	assertErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrInvalidInput.ErrorCode())
}
