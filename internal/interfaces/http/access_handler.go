package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/domain/access"
)

// AccessHandler resolve permissões e rotas para o frontend. Roda atrás de
// OptionalAuthMiddleware: sessão anônima é um usuário válido aqui (só rotas
// públicas).
type AccessHandler struct{}

// NewAccessHandler constrói o handler.
func NewAccessHandler() *AccessHandler { return &AccessHandler{} }

// routeCheckResponse resultado da checagem de rota. Quando negado, o
// frontend redireciona para default_route.
type routeCheckResponse struct {
	Route        string `json:"route"`
	Allowed      bool   `json:"allowed"`
	DefaultRoute string `json:"default_route"`
}

// permissionsResponse capacidades da sessão corrente.
type permissionsResponse struct {
	Permissions []string `json:"permissions"`
	AdminPanel  bool     `json:"admin_panel"`
}

// allPermissions na ordem de exibição do painel.
var allPermissions = []access.Permission{
	access.PermViewCars,
	access.PermBuyCars,
	access.PermRequestCarPurchase,
	access.PermViewOwnInvoices,
	access.PermGenerateInvoices,
	access.PermAccessWorkshop,
	access.PermSellCars,
	access.PermManagePurchaseRequests,
	access.PermViewNotifications,
	access.PermViewAllInvoices,
	access.PermManageCars,
	access.PermPostCars,
	access.PermDeleteInvoices,
	access.PermManageMechanics,
}

// CheckRoute decide se a sessão pode navegar até a rota pedida.
// GET /api/access/route?path=/admin
func (h *AccessHandler) CheckRoute(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		path = "/"
	}
	user := GetAccessUser(c)
	userType := ""
	if user != nil {
		userType = user.Type
	}
	return c.JSON(routeCheckResponse{
		Route:        path,
		Allowed:      access.CanAccessRoute(user, access.Route(path)),
		DefaultRoute: string(access.DefaultRoute(userType)),
	})
}

// Permissions devolve as capacidades da sessão corrente, para a UI montar
// menus sem chutar.
// GET /api/access/permissions
func (h *AccessHandler) Permissions(c *fiber.Ctx) error {
	user := GetAccessUser(c)
	granted := make([]string, 0, len(allPermissions))
	for _, p := range allPermissions {
		if access.HasPermission(user, p) {
			granted = append(granted, string(p))
		}
	}
	return c.JSON(permissionsResponse{
		Permissions: granted,
		AdminPanel:  access.CanAccessAdminPanel(user),
	})
}
