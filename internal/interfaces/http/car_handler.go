package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/application/usecase"
	"github.com/guaianases/oficina-api/internal/domain/entity"
)

// CarHandler vitrine de veículos e solicitações de compra.
type CarHandler struct {
	uc *usecase.CarUseCase
}

// NewCarHandler constrói o handler.
func NewCarHandler(uc *usecase.CarUseCase) *CarHandler {
	return &CarHandler{uc: uc}
}

// ListAvailable devolve a vitrine (público).
// GET /api/cars
func (h *CarHandler) ListAvailable(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create anuncia um veículo (post_cars).
// POST /api/cars
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita um anúncio (manage_cars).
// PUT /api/cars/:id
func (h *CarHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete remove um anúncio (manage_cars).
// DELETE /api/cars/:id
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RequestPurchase registra a intenção de compra do usuário logado
// (request_car_purchase).
// POST /api/cars/purchase-requests
func (h *CarHandler) RequestPurchase(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RequestPurchase(id.UserID, id.FullName, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRequests devolve as solicitações (manage_purchase_requests).
// GET /api/cars/purchase-requests
func (h *CarHandler) ListRequests(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.ListRequests(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Approve aceita uma solicitação pendente; o carro sai da vitrine.
// POST /api/cars/purchase-requests/:id/approve
func (h *CarHandler) Approve(c *fiber.Ctx) error {
	return h.resolve(c, entity.PurchaseStatusApproved)
}

// Reject recusa uma solicitação pendente.
// POST /api/cars/purchase-requests/:id/reject
func (h *CarHandler) Reject(c *fiber.Ctx) error {
	return h.resolve(c, entity.PurchaseStatusRejected)
}

func (h *CarHandler) resolve(c *fiber.Ctx, status string) error {
	id := GetIdentity(c)
	if id == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.ResolveRequest(c.Params("id"), status, id.UserID); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
