package handler

import (
	"net/http"

	"directorio/internal/delivery/api/response"
	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultModerationLimit = 50
	maxModerationLimit     = 200
)

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
}

// ModerationHandler serves moderator login and review queues.
type ModerationHandler struct {
	moderationUC usecase.ModerationUsecase
}

// NewModerationHandler is the constructor for ModerationHandler
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{moderationUC: params.ModerationUC}
}

// LoginRequest represents the moderator login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateModeratorRequest represents the body for adding a moderator
type CreateModeratorRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *ModerationHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.moderationUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// CreateModerator handles POST /api/v1/moderation/moderators
func (h *ModerationHandler) CreateModerator(c echo.Context) error {
	var req CreateModeratorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	moderator, err := h.moderationUC.CreateModerator(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, moderator)
}

// ListPending handles GET /api/v1/moderation/businesses
func (h *ModerationHandler) ListPending(c echo.Context) error {
	page, err := moderationPage(c)
	if err != nil {
		return err
	}

	pending, err := h.moderationUC.ListPending(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pending)
}

// Approve handles POST /api/v1/moderation/businesses/:id/approve
func (h *ModerationHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationUC.Approve(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Reject handles DELETE /api/v1/moderation/businesses/:id
func (h *ModerationHandler) Reject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationUC.Reject(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListInquiries handles GET /api/v1/moderation/inquiries?status=pending|handled
func (h *ModerationHandler) ListInquiries(c echo.Context) error {
	status := entity.InquiryStatus(c.QueryParam("status"))
	if status != "" && status != entity.InquiryStatusPending && status != entity.InquiryStatusHandled {
		return invalidField("status", "Debe ser uno de: pending handled")
	}
	page, err := moderationPage(c)
	if err != nil {
		return err
	}

	inquiries, err := h.moderationUC.ListInquiries(c.Request().Context(), status, page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, inquiries)
}

// MarkInquiryHandled handles POST /api/v1/moderation/inquiries/:id/handled
func (h *ModerationHandler) MarkInquiryHandled(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationUC.MarkInquiryHandled(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func moderationPage(c echo.Context) (repository.Page, error) {
	page, err := pageFromQuery(c)
	if err != nil {
		return page, err
	}
	if page.Limit == 0 {
		page.Limit = defaultModerationLimit
	}
	page.Limit = min(page.Limit, maxModerationLimit)

	return page, nil
}
