package handler

import (
	"net/http"

	"directorio/internal/delivery/api/response"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
}

// ChatHandler answers the chat widget over plain HTTP.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{chatUC: params.ChatUC}
}

// ChatRequest is one message typed by a visitor
type ChatRequest struct {
	Message string `json:"message"`
}

// InquiryRequest is a question left for the moderators
type InquiryRequest struct {
	Message string `json:"message"`
	Contact string `json:"contact" validate:"max=200"`
}

// InquiryResponse acknowledges a stored inquiry
type InquiryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Reply handles POST /api/v1/chat
func (h *ChatHandler) Reply(c echo.Context) error {
	var req ChatRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	reply, err := h.chatUC.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, reply)
}

// SubmitInquiry handles POST /api/v1/inquiries
func (h *ChatHandler) SubmitInquiry(c echo.Context) error {
	var req InquiryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	inquiry, thanks, err := h.chatUC.SubmitInquiry(c.Request().Context(), req.Message, req.Contact)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, InquiryResponse{ID: inquiry.ID.String(), Message: thanks})
}
