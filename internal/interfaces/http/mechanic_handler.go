package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/application/usecase"
)

// MechanicHandler gestão do quadro de mecânicos (manage_mechanics).
type MechanicHandler struct {
	uc *usecase.MechanicUseCase
}

// NewMechanicHandler constrói o handler.
func NewMechanicHandler(uc *usecase.MechanicUseCase) *MechanicHandler {
	return &MechanicHandler{uc: uc}
}

// List devolve o quadro, pendentes primeiro.
// GET /api/mechanics
func (h *MechanicHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Approve libera um mecânico pendente com o cargo inicial.
// POST /api/mechanics/:id/approve
func (h *MechanicHandler) Approve(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ApproveMechanicRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Approve(c.Params("id"), id.UserID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdatePosition troca o cargo de um mecânico aprovado.
// PUT /api/mechanics/:id/position
func (h *MechanicHandler) UpdatePosition(c *fiber.Ctx) error {
	var in dto.UpdatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdatePosition(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Remove exclui o mecânico do quadro.
// DELETE /api/mechanics/:id
func (h *MechanicHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
