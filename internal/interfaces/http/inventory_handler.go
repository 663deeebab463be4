package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordMovement(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMovement godoc
// @Summary      Obtener movimiento por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetMovement(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetMovementsByBike godoc
// @Summary      Historial de movimientos de una bicicleta
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        bikeId  path  string  true  "ID de la bicicleta"
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/inventory/bikes/{bikeId}/movements [get]
func (h *InventoryHandler) GetMovementsByBike(c *fiber.Ctx) error {
	bikeID := c.Params("bikeId")
	if bikeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "bikeId es requerido"})
	}
	out, err := h.uc.GetMovements(c.Context(), bikeID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Stock actual de una bicicleta (derivado del historial)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        bikeId  path  string  true  "ID de la bicicleta"
// @Success      200     {object}  dto.StockResponse
// @Router       /api/inventory/bikes/{bikeId}/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	bikeID := c.Params("bikeId")
	if bikeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "bikeId es requerido"})
	}
	out, err := h.uc.GetStock(c.Context(), bikeID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// LowStockAlerts godoc
// @Summary      Bicicletas con stock en o bajo el umbral configurado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockAlertDTO
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) LowStockAlerts(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStockAlerts(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
