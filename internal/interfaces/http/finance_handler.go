package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/application/finance"
)

// FinanceHandler gère les requêtes HTTP du journal de caisse.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler construit le handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Summary godoc
// @Summary      Agrégats de trésorerie
// @Tags         finance
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryResponse
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddExpense godoc
// @Summary      Enregistrer une dépense
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddEntryRequest  true  "Dépense"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/expenses [post]
func (h *FinanceHandler) AddExpense(c *fiber.Ctx) error {
	var in dto.AddEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.AddExpense(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddIncome godoc
// @Summary      Enregistrer un encaissement manuel
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddEntryRequest  true  "Encaissement"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/incomes [post]
func (h *FinanceHandler) AddIncome(c *fiber.Ctx) error {
	var in dto.AddEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.AddIncome(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Journal de caisse complet
// @Tags         finance
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
