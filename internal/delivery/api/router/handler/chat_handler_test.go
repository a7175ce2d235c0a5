package handler

import (
	"net/http"
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

func setupChatHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockChatUsecase) {
	uc := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(ChatHandlerParams{ChatUC: uc})

	e := newTestEcho()
	e.POST("/chat", h.Reply)
	e.POST("/inquiries", h.SubmitInquiry)

	return e, uc
}

func TestChatHandler_Reply(t *testing.T) {
	e, uc := setupChatHandler(t)

	uc.EXPECT().
		Reply(mock.Anything, "¿dónde hay pizza?").
		Return(&usecase.ChatReply{
			Message:     "Encontré 1 restaurante(s) de comida italiana.",
			Suggestions: []*usecase.ChatSuggestion{{ID: uuid.New(), Name: "Pizzería Napoli"}},
		}, nil)
	uc.EXPECT().Reply(mock.Anything, "").Return(nil, errors.WithStack(domainerrors.ErrEmptyMessage))

	rec := doRequest(e, http.MethodPost, "/chat", `{"message":"¿dónde hay pizza?"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Pizzería Napoli")

	rec = doRequest(e, http.MethodPost, "/chat", `{}`)
	assertErrorCode(t, rec, domainerrors.ErrEmptyMessage.HTTPCode(), domainerrors.ErrEmptyMessage.ErrorCode())
}

func TestChatHandler_SubmitInquiry(t *testing.T) {
	e, uc := setupChatHandler(t)
	id := uuid.New()

	uc.EXPECT().
		SubmitInquiry(mock.Anything, "Quiero registrar mi panadería", "3001112233").
		Return(&entity.Inquiry{ID: id}, "¡Gracias por tu mensaje! Un moderador lo revisará pronto.", nil)

	rec := doRequest(e, http.MethodPost, "/inquiries", `{"message":"Quiero registrar mi panadería","contact":"3001112233"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{"id":"`+id.String()+`","message":"¡Gracias por tu mensaje! Un moderador lo revisará pronto."}`, string(env.Data))
}
