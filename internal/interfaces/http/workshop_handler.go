package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/application/workshop"
	"github.com/guaianases/oficina-api/internal/domain"
)

// WorkshopHandler calculadora de orçamentos e emissão de notas (protegido,
// access_workshop).
type WorkshopHandler struct {
	uc *workshop.WorkshopUseCase
}

// NewWorkshopHandler constrói o handler.
func NewWorkshopHandler(uc *workshop.WorkshopUseCase) *WorkshopHandler {
	return &WorkshopHandler{uc: uc}
}

// Quote devolve o orçamento corrente do ator.
// GET /api/workshop/quote
func (h *WorkshopHandler) Quote(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Quote(actor)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// AddService adiciona um serviço ao orçamento.
// POST /api/workshop/quote/services
func (h *WorkshopHandler) AddService(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AddServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ServiceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "service_id obrigatório"})
	}
	out, err := h.uc.AddService(actor, in.ServiceID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity fixa a quantidade de uma linha; zero remove.
// PUT /api/workshop/quote/services/:id/quantity
func (h *WorkshopHandler) SetQuantity(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetQuantity(actor, c.Params("id"), in.Quantity)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuote atualização parcial dos campos do orçamento.
// PATCH /api/workshop/quote
func (h *WorkshopHandler) UpdateQuote(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateQuote(actor, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ResetQuote descarta o orçamento corrente.
// DELETE /api/workshop/quote
func (h *WorkshopHandler) ResetQuote(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.ResetQuote(actor)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListServices devolve o catálogo ativo da oficina.
// GET /api/workshop/services
func (h *WorkshopHandler) ListServices(c *fiber.Ctx) error {
	out, err := h.uc.ListServices()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Counterpart resolve o ID de cliente digitado no orçamento. ID sem cadastro
// não é erro: a nota sai como "Não registrado".
// GET /api/workshop/counterpart/:id
func (h *WorkshopHandler) Counterpart(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id obrigatório"})
	}
	return c.JSON(h.uc.Counterpart(id))
}

// GenerateInvoice fecha o orçamento e emite a nota fiscal. As mensagens de
// validação são as exibidas na calculadora, uma por pré-condição.
// POST /api/workshop/invoices
func (h *WorkshopHandler) GenerateInvoice(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.GenerateInvoice(actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingClientID),
			errors.Is(err, domain.ErrMissingMechanic),
			errors.Is(err, domain.ErrEmptySelection):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sem permissão para gerar notas fiscais"})
		case errors.Is(err, domain.ErrPersistence):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: domain.ErrPersistence.Error()})
		default:
			return domainError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
