package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/application/usecase"
)

// NotificationHandler avisos internos (view_notifications).
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler constrói o handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List devolve as notificações, mais recentes primeiro.
// GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListUnread devolve só as não lidas (badge do painel).
// GET /api/notifications/unread
func (h *NotificationHandler) ListUnread(c *fiber.Ctx) error {
	out, err := h.uc.ListUnread()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MarkRead dá baixa em uma notificação.
// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead dá baixa em todas.
// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
