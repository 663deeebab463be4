package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bicirent-pro/internal/application/bike"
	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

// BikeHandler maneja las peticiones HTTP para el catálogo de bicicletas (protegido).
type BikeHandler struct {
	uc *bike.UseCase
}

// NewBikeHandler construye el handler.
func NewBikeHandler(uc *bike.UseCase) *BikeHandler {
	return &BikeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear bicicleta
// @Tags         bikes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBikeRequest  true  "Datos de la bicicleta"
// @Success      201   {object}  dto.BikeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bikes [post]
func (h *BikeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBikeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBike(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bicicleta por ID
// @Tags         bikes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bicicleta"
// @Success      200  {object}  dto.BikeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bikes/{id} [get]
func (h *BikeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetBike(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bicicletas
// @Tags         bikes
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Filtrar por tipo"
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        brand   query  string  false  "Filtrar por marca"
// @Success      200     {array}  dto.BikeResponse
// @Router       /api/bikes [get]
func (h *BikeHandler) List(c *fiber.Ctx) error {
	filter := repository.BikeFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Brand:  c.Query("brand"),
	}
	out, err := h.uc.ListBikes(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bicicleta
// @Tags         bikes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la bicicleta"
// @Param        body  body  dto.UpdateBikeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BikeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bikes/{id} [put]
func (h *BikeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateBikeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateBike(c.Context(), id, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la bicicleta
// @Tags         bikes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la bicicleta"
// @Param        body  body  dto.UpdateBikeStatusRequest  true  "Acción: rent, return, sell, maintenance, retire"
// @Success      200   {object}  dto.BikeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bikes/{id}/status [patch]
func (h *BikeHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateBikeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateBikeStatus(c.Context(), id, in.Action)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bicicleta
// @Tags         bikes
// @Security     Bearer
// @Param        id   path  string  true  "ID de la bicicleta"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bikes/{id} [delete]
func (h *BikeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteBike(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
