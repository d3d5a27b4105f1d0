package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/guaianases/oficina-api/internal/application/auth"
	"github.com/guaianases/oficina-api/internal/application/usecase"
	"github.com/guaianases/oficina-api/internal/application/workshop"
	infrapdf "github.com/guaianases/oficina-api/internal/infrastructure/pdf"
	"github.com/guaianases/oficina-api/internal/infrastructure/postgres"
	httpRouter "github.com/guaianases/oficina-api/internal/interfaces/http"
	"github.com/guaianases/oficina-api/pkg/config"
	"github.com/guaianases/oficina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	mechanicRepo := postgres.NewMechanicRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	carRepo := postgres.NewCarRepository(pool)
	requestRepo := postgres.NewPurchaseRequestRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)

	authUC := auth.NewAuthUseCase(clientRepo, mechanicRepo, notifRepo,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.AdminConfig{
			Username:     cfg.Admin.Username,
			Email:        cfg.Admin.Email,
			PasswordHash: cfg.Admin.PasswordHash,
		},
	)

	sessions := workshop.NewSessionStore()
	workshopUC := workshop.NewWorkshopUseCase(
		sessions, serviceRepo, invoiceRepo, clientRepo, mechanicRepo, notifRepo, log,
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoiceUC := workshop.NewInvoiceUseCase(invoiceRepo, pdfGenerator)

	carUC := usecase.NewCarUseCase(carRepo, requestRepo, notifRepo)
	mechanicUC := usecase.NewMechanicUseCase(mechanicRepo)
	notificationUC := usecase.NewNotificationUseCase(notifRepo)
	catalogUC := usecase.NewCatalogUseCase(serviceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.InitMetrics()
	app.Use(httpRouter.MetricsMiddleware())
	app.Get("/metrics", httpRouter.MetricsHandler())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		WorkshopUC:     workshopUC,
		InvoiceUC:      invoiceUC,
		CarUC:          carUC,
		MechanicUC:     mechanicUC,
		NotificationUC: notificationUC,
		CatalogUC:      catalogUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
