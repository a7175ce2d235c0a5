package handler

import (
	"net/http"

	"directorio/internal/delivery/api/response"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
}

// PromotionHandler serves the home page banners.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
}

// NewPromotionHandler is the constructor for PromotionHandler
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{promotionUC: params.PromotionUC}
}

// ListActive handles GET /api/v1/promotions
func (h *PromotionHandler) ListActive(c echo.Context) error {
	promotions, err := h.promotionUC.ListActive(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, promotions)
}

// Current handles GET /api/v1/promotions/current
func (h *PromotionHandler) Current(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.promotionUC.Current())
}

// Create handles POST /api/v1/moderation/promotions
func (h *PromotionHandler) Create(c echo.Context) error {
	var input usecase.PromotionInput
	if err := bind(c, &input); err != nil {
		return err
	}

	promotion, err := h.promotionUC.Create(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, promotion)
}

// Delete handles DELETE /api/v1/moderation/promotions/:id
func (h *PromotionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.promotionUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
