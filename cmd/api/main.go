package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appbike "github.com/tu-usuario/bicirent-pro/internal/application/bike"
	appcustomer "github.com/tu-usuario/bicirent-pro/internal/application/customer"
	appinventory "github.com/tu-usuario/bicirent-pro/internal/application/inventory"
	apprental "github.com/tu-usuario/bicirent-pro/internal/application/rental"
	appsale "github.com/tu-usuario/bicirent-pro/internal/application/sale"
	"github.com/tu-usuario/bicirent-pro/internal/infrastructure/events"
	infrapdf "github.com/tu-usuario/bicirent-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/bicirent-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/bicirent-pro/internal/interfaces/http"
	"github.com/tu-usuario/bicirent-pro/pkg/config"
	"github.com/tu-usuario/bicirent-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	bikeRepo := postgres.NewBikeRepository(pool)
	invRepo := postgres.NewInventoryMovementRepository(pool)
	rentalRepo := postgres.NewRentalRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	publisher := events.NewLogPublisher(log)
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	bikeUC := appbike.NewUseCase(bikeRepo, publisher)
	rentalUC := apprental.NewUseCase(rentalRepo, bikeRepo, invRepo, publisher)
	saleUC := appsale.NewUseCase(saleRepo, bikeRepo, invRepo, customerRepo, receiptGen, publisher)
	inventoryUC := appinventory.NewUseCase(invRepo, bikeRepo, publisher, cfg.Inventory.LowStockThreshold)
	customerUC := appcustomer.NewUseCase(customerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BiciRent Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BikeUC:      bikeUC,
		RentalUC:    rentalUC,
		SaleUC:      saleUC,
		InventoryUC: inventoryUC,
		CustomerUC:  customerUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
