package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/application/pos"
)

// SalesHandler gère les requêtes HTTP du point de vente.
type SalesHandler struct {
	uc *pos.UseCase
}

// NewSalesHandler construit le handler.
func NewSalesHandler(uc *pos.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Checkout godoc
// @Summary      Encaisser une vente ou une réservation
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Panier"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Checkout(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Share godoc
// @Summary      Composer le reçu ou le devis à partager
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShareRequest  true  "Panier et canal de partage"
// @Success      200   {object}  dto.ShareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/share [post]
func (h *SalesHandler) Share(c *fiber.Ctx) error {
	var in dto.ShareRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Share(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
