package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/application/usecase"
)

// ClientHandler gère les requêtes HTTP des clients.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Données du client"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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
// @Summary      Lister les clients
// @Tags         clients
// @Produce      json
// @Success      200  {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un client par ID
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "ID du client"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "client introuvable"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du client"
// @Param        body  body  dto.UpdateClientRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "client introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un client
// @Tags         clients
// @Param        id  path  string  true  "ID du client"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
