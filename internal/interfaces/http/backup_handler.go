package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/backup"
	"github.com/manyboliot2022/eynpro/internal/application/dto"
)

// BackupHandler gère l'export et la restauration de la sauvegarde.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construit le handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exporter la sauvegarde complète
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.BackupFile
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="eynpro-backup.json"`)
	return c.JSON(out)
}

// Import godoc
// @Summary      Restaurer une sauvegarde
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupFile  true  "Sauvegarde à restaurer"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var in dto.BackupFile
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Import(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
