package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
)

// writeError traduit une erreur du domaine en réponse HTTP. Les erreurs
// inconnues sortent en 500 avec leur message.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrPanierVide):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PANIER_VIDE", Message: err.Error()})
	case errors.Is(err, domain.ErrClientRequis):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CLIENT_REQUIS", Message: err.Error()})
	case errors.Is(err, domain.ErrSauvegardeInvalide):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SAUVEGARDE_INVALIDE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrDocumentCorrompu):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DOCUMENT_CORROMPU", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
