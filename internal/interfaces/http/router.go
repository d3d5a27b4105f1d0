package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guaianases/oficina-api/internal/application/auth"
	"github.com/guaianases/oficina-api/internal/application/usecase"
	"github.com/guaianases/oficina-api/internal/application/workshop"
	"github.com/guaianases/oficina-api/internal/domain/access"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	WorkshopUC     *workshop.WorkshopUseCase
	InvoiceUC      *workshop.InvoiceUseCase
	CarUC          *usecase.CarUseCase
	MechanicUC     *usecase.MechanicUseCase
	NotificationUC *usecase.NotificationUseCase
	CatalogUC      *usecase.CatalogUseCase
	JWTSecret      string
}

// Router registra as rotas da API. Cada grupo protegido carrega o
// RequirePermission da capacidade correspondente; a tabela de verdade mora
// no pacote access, aqui só a amarração.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register/client", authHandler.RegisterClient)
	authGroup.Post("/register/mechanic", authHandler.RegisterMechanic)
	authGroup.Post("/login", authHandler.Login)

	// Resolução de acesso (anônimo vê só rotas públicas)
	accessGroup := api.Group("/access", OptionalAuthMiddleware(deps.JWTSecret))
	accessHandler := NewAccessHandler()
	accessGroup.Get("/route", accessHandler.CheckRoute)
	accessGroup.Get("/permissions", accessHandler.Permissions)

	// Vitrine e visor de notas (público)
	carHandler := NewCarHandler(deps.CarUC)
	api.Get("/cars", carHandler.ListAvailable)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	api.Get("/invoices/number/:number", invoiceHandler.GetByNumber)

	workshopHandler := NewWorkshopHandler(deps.WorkshopUC)
	api.Get("/workshop/services", workshopHandler.ListServices)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Oficina (mecânico aprovado)
	ws := protected.Group("/workshop", RequirePermission(access.PermAccessWorkshop))
	ws.Get("/quote", workshopHandler.Quote)
	ws.Post("/quote/services", workshopHandler.AddService)
	ws.Put("/quote/services/:id/quantity", workshopHandler.SetQuantity)
	ws.Patch("/quote", workshopHandler.UpdateQuote)
	ws.Delete("/quote", workshopHandler.ResetQuote)
	ws.Get("/counterpart/:id", workshopHandler.Counterpart)
	ws.Post("/invoices", workshopHandler.GenerateInvoice)

	// Notas fiscais
	protected.Get("/invoices", RequirePermission(access.PermViewAllInvoices), invoiceHandler.List)
	protected.Get("/invoices/mine", RequirePermission(access.PermViewOwnInvoices), invoiceHandler.ListMine)
	protected.Get("/invoices/:id/pdf", RequirePermission(access.PermViewAllInvoices), invoiceHandler.PDF)
	protected.Delete("/invoices/:id", RequirePermission(access.PermDeleteInvoices), invoiceHandler.Delete)

	// Veículos e solicitações de compra
	protected.Post("/cars", RequirePermission(access.PermPostCars), carHandler.Create)
	protected.Put("/cars/:id", RequirePermission(access.PermManageCars), carHandler.Update)
	protected.Delete("/cars/:id", RequirePermission(access.PermManageCars), carHandler.Delete)
	protected.Post("/cars/purchase-requests", RequirePermission(access.PermRequestCarPurchase), carHandler.RequestPurchase)
	protected.Get("/cars/purchase-requests", RequirePermission(access.PermManagePurchaseRequests), carHandler.ListRequests)
	protected.Post("/cars/purchase-requests/:id/approve", RequirePermission(access.PermManagePurchaseRequests), carHandler.Approve)
	protected.Post("/cars/purchase-requests/:id/reject", RequirePermission(access.PermManagePurchaseRequests), carHandler.Reject)

	// Quadro de mecânicos
	mechanicHandler := NewMechanicHandler(deps.MechanicUC)
	mechanics := protected.Group("/mechanics", RequirePermission(access.PermManageMechanics))
	mechanics.Get("/", mechanicHandler.List)
	mechanics.Post("/:id/approve", mechanicHandler.Approve)
	mechanics.Put("/:id/position", mechanicHandler.UpdatePosition)
	mechanics.Delete("/:id", mechanicHandler.Remove)

	// Notificações
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := protected.Group("/notifications", RequirePermission(access.PermViewNotifications))
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread", notificationHandler.ListUnread)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Catálogo de serviços. Editar preço mexe em toda nota futura, então fica
	// com os mesmos cargos máximos que gerenciam o quadro.
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	services := protected.Group("/services", RequirePermission(access.PermManageMechanics))
	services.Post("/", catalogHandler.Create)
	services.Put("/:id", catalogHandler.Update)
	services.Delete("/:id", catalogHandler.Deactivate)
}
