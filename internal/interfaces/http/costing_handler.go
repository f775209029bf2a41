package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/costing"
	"github.com/manyboliot2022/eynpro/internal/application/dto"
)

// CostingHandler gère les requêtes HTTP du calculateur de coûts.
type CostingHandler struct {
	uc *costing.UseCase
}

// NewCostingHandler construit le handler.
func NewCostingHandler(uc *costing.UseCase) *CostingHandler {
	return &CostingHandler{uc: uc}
}

// Preview godoc
// @Summary      Chiffrer un lot sans le persister
// @Tags         costing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Lot à chiffrer"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/costing/preview [post]
func (h *CostingHandler) Preview(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Preview(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Valider un lot (fusion catalogue + historique)
// @Tags         costing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitBatchRequest  true  "Lot à valider"
// @Success      200   {object}  dto.CommitBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/costing/commit [post]
func (h *CostingHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.CommitBatch(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Historique des commandes validées
// @Tags         costing
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/costing/orders [get]
func (h *CostingHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
