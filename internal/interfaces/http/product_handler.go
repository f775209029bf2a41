package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/application/usecase"
)

// ProductHandler gère les requêtes HTTP du catalogue.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construit le handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un produit
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Données du produit"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister le catalogue
// @Tags         products
// @Produce      json
// @Param        search  query  string  false  "Filtre par nom (sous-chaîne)"
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un produit par ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit introuvable"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un produit
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du produit"
// @Param        body  body  dto.UpdateProductRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un produit
// @Tags         products
// @Param        id  path  string  true  "ID du produit"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Agrégats du catalogue
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.CatalogStatsResponse
// @Router       /api/products/stats [get]
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ImportPresets godoc
// @Summary      Initialiser le catalogue pré-détecté
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ImportPresetsResponse
// @Router       /api/products/presets [post]
func (h *ProductHandler) ImportPresets(c *fiber.Ctx) error {
	out, err := h.uc.ImportPresets()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
