package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bicirent-pro/internal/application/bike"
	"github.com/tu-usuario/bicirent-pro/internal/application/customer"
	"github.com/tu-usuario/bicirent-pro/internal/application/inventory"
	"github.com/tu-usuario/bicirent-pro/internal/application/rental"
	"github.com/tu-usuario/bicirent-pro/internal/application/sale"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BikeUC      *bike.UseCase
	RentalUC    *rental.UseCase
	SaleUC      *sale.UseCase
	InventoryUC *inventory.UseCase
	CustomerUC  *customer.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Bikes (protegido)
	bikes := protected.Group("/bikes")
	bikeHandler := NewBikeHandler(deps.BikeUC)
	bikes.Post("/", bikeHandler.Create)
	bikes.Get("/", bikeHandler.List)
	bikes.Get("/:id", bikeHandler.GetByID)
	bikes.Put("/:id", bikeHandler.Update)
	bikes.Patch("/:id/status", bikeHandler.UpdateStatus)
	bikes.Delete("/:id", bikeHandler.Delete)

	// Rentals (protegido)
	rentals := protected.Group("/rentals")
	rentalHandler := NewRentalHandler(deps.RentalUC)
	rentals.Post("/", rentalHandler.Create)
	rentals.Get("/", rentalHandler.List)
	rentals.Get("/:id", rentalHandler.GetByID)
	rentals.Patch("/:id/status", rentalHandler.UpdateStatus)
	rentals.Patch("/:id/extend", rentalHandler.Extend)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Patch("/:id/status", saleHandler.UpdateStatus)
	sales.Get("/:id/tva", saleHandler.CalculateTVA)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)
	invGroup.Get("/bikes/:bikeId/movements", inventoryHandler.GetMovementsByBike)
	invGroup.Get("/bikes/:bikeId/stock", inventoryHandler.GetStock)
	invGroup.Get("/alerts", inventoryHandler.LowStockAlerts)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
}
