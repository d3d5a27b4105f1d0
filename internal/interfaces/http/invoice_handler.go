package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/application/workshop"
)

// InvoiceHandler consulta e deleção de notas já emitidas.
type InvoiceHandler struct {
	uc *workshop.InvoiceUseCase
}

// NewInvoiceHandler constrói o handler.
func NewInvoiceHandler(uc *workshop.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List devolve todas as notas (view_all_invoices).
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListMine devolve as notas do próprio cliente logado (view_own_invoices).
// GET /api/invoices/mine
func (h *InvoiceHandler) ListMine(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListByClient(id.UserID, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByNumber busca pelo número de exibição (MGU-...). Visor público: quem
// tem o número em mãos consulta a nota sem login.
// GET /api/invoices/number/:number
func (h *InvoiceHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número obrigatório"})
	}
	out, err := h.uc.GetByNumber(number)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete remove uma nota (delete_invoices).
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF devolve a versão imprimível da nota.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.PDF(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
