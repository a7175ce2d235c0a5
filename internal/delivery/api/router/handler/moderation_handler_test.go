package handler

import (
	"net/http"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	mockUsecase "directorio/internal/mocks/usecase"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupModerationHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockModerationUsecase) {
	uc := mockUsecase.NewMockModerationUsecase(t)
	h := NewModerationHandler(ModerationHandlerParams{ModerationUC: uc})

	e := newTestEcho()
	e.POST("/auth/login", h.Login)
	e.POST("/moderators", h.CreateModerator)
	e.GET("/businesses", h.ListPending)
	e.POST("/businesses/:id/approve", h.Approve)
	e.DELETE("/businesses/:id", h.Reject)
	e.GET("/inquiries", h.ListInquiries)
	e.POST("/inquiries/:id/handled", h.MarkInquiryHandled)

	return e, uc
}

func TestModerationHandler_Login(t *testing.T) {
	e, uc := setupModerationHandler(t)

	uc.EXPECT().
		Login(mock.Anything, "admin@gacheta.gov.co", "secreto123").
		Return(&usecase.LoginResult{AccessToken: "token", ExpiresIn: 43200}, nil)
	uc.EXPECT().
		Login(mock.Anything, "admin@gacheta.gov.co", "mala").
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"admin@gacheta.gov.co","password":"secreto123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"access_token":"token"`)

	rec = doRequest(e, http.MethodPost, "/auth/login", `{"email":"admin@gacheta.gov.co","password":"mala"}`)
	env := assertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	assert.Empty(t, env.Error.Details)
}

func TestModerationHandler_Login_Validation(t *testing.T) {
	e, _ := setupModerationHandler(t)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"no-es-correo"}`)
	env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, string(env.Error.Details), `"field":"email"`)
	assert.Contains(t, string(env.Error.Details), `"field":"password"`)
}

func TestModerationHandler_CreateModerator(t *testing.T) {
	e, uc := setupModerationHandler(t)

	uc.EXPECT().
		CreateModerator(mock.Anything, "nuevo@gacheta.gov.co", "Concejo", "secreto123").
		Return(&entity.Moderator{ID: uuid.New(), Email: "nuevo@gacheta.gov.co"}, nil)

	rec := doRequest(e, http.MethodPost, "/moderators", `{"email":"nuevo@gacheta.gov.co","name":"Concejo","password":"secreto123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestModerationHandler_ListPending(t *testing.T) {
	tests := []struct {
		name   string
		target string
		page   repository.Page
	}{
		{name: "default limit", target: "/businesses", page: repository.Page{Limit: defaultModerationLimit}},
		{name: "explicit page", target: "/businesses?limit=5&offset=10", page: repository.Page{Limit: 5, Offset: 10}},
		{name: "capped limit", target: "/businesses?limit=1000", page: repository.Page{Limit: maxModerationLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := setupModerationHandler(t)

			uc.EXPECT().ListPending(mock.Anything, tt.page).Return([]*usecase.PendingBusiness{}, nil)

			rec := doRequest(e, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestModerationHandler_ApproveAndReject(t *testing.T) {
	e, uc := setupModerationHandler(t)
	id := uuid.New()
	approved := uuid.New()

	uc.EXPECT().Approve(mock.Anything, id).Return(nil)
	uc.EXPECT().Approve(mock.Anything, approved).Return(errors.WithStack(domainerrors.ErrBusinessAlreadyApproved))
	uc.EXPECT().Reject(mock.Anything, id).Return(nil)

	rec := doRequest(e, http.MethodPost, "/businesses/"+id.String()+"/approve", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(e, http.MethodPost, "/businesses/"+approved.String()+"/approve", "")
	assertErrorCode(t, rec, domainerrors.ErrBusinessAlreadyApproved.HTTPCode(), domainerrors.ErrBusinessAlreadyApproved.ErrorCode())

	rec = doRequest(e, http.MethodDelete, "/businesses/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestModerationHandler_Inquiries(t *testing.T) {
	e, uc := setupModerationHandler(t)
	id := uuid.New()

	uc.EXPECT().
		ListInquiries(mock.Anything, entity.InquiryStatusPending, repository.Page{Limit: defaultModerationLimit}).
		Return([]*entity.Inquiry{{ID: id, Message: "¿Cómo registro mi negocio?"}}, nil)
	uc.EXPECT().
		ListInquiries(mock.Anything, entity.InquiryStatus(""), repository.Page{Limit: defaultModerationLimit}).
		Return([]*entity.Inquiry{}, nil)
	uc.EXPECT().MarkInquiryHandled(mock.Anything, id).Return(nil)

	rec := doRequest(e, http.MethodGet, "/inquiries?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "registro mi negocio")

	rec = doRequest(e, http.MethodGet, "/inquiries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/inquiries?status=archived", "")
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	rec = doRequest(e, http.MethodPost, "/inquiries/"+id.String()+"/handled", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
