package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/application/usecase"
)

// SettingsHandler gère les requêtes HTTP du profil d'entreprise.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construit le handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Profil d'entreprise courant
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.CompanySettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Écraser le profil d'entreprise
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanySettingsRequest  true  "Profil complet"
// @Success      200   {object}  dto.CompanySettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in dto.CompanySettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
