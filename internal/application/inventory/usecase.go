package inventory

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/application/ports"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/inventory"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

// UseCase casos de uso del libro de inventario. El stock nunca se almacena:
// cada consulta lo re-deriva del historial completo de movimientos.
type UseCase struct {
	invRepo           repository.InventoryRepository
	bikeRepo          repository.BikeRepository
	events            ports.EventPublisher
	lowStockThreshold int
}

// NewUseCase construye el caso de uso. El umbral de stock bajo viene de
// configuración (INVENTORY_LOW_STOCK_THRESHOLD).
func NewUseCase(
	invRepo repository.InventoryRepository,
	bikeRepo repository.BikeRepository,
	events ports.EventPublisher,
	lowStockThreshold int,
) *UseCase {
	return &UseCase{
		invRepo:           invRepo,
		bikeRepo:          bikeRepo,
		events:            events,
		lowStockThreshold: lowStockThreshold,
	}
}

// RecordMovement registra una entrada manual del libro (compra, pérdida,
// ajuste...). No valida stock: el libro acepta cualquier movimiento válido y
// el saldo puede quedar negativo.
func (uc *UseCase) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	movement, err := entity.NewInventoryMovement(entity.NewMovementParams{
		BikeID:   in.BikeID,
		Type:     entity.MovementType(in.Type),
		Reason:   entity.MovementReason(in.Reason),
		Quantity: in.Quantity,
		Date:     in.Date,
		Notes:    in.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.invRepo.SaveMovement(ctx, movement); err != nil {
		return nil, err
	}
	uc.publish(ctx, movement.PullEvents())
	return toMovementResponse(movement), nil
}

// GetStock deriva el stock actual de una bicicleta desde su historial.
func (uc *UseCase) GetStock(ctx context.Context, bikeID string) (*dto.StockResponse, error) {
	movements, err := uc.invRepo.FindMovementsByBikeID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	stock := inventory.CalculateCurrentStock(movements)
	return &dto.StockResponse{
		BikeID:             bikeID,
		CurrentStock:       stock,
		AvailableForRental: inventory.IsAvailableForRental(movements),
	}, nil
}

// GetMovements devuelve el historial completo de una bicicleta.
func (uc *UseCase) GetMovements(ctx context.Context, bikeID string) ([]*dto.MovementResponse, error) {
	movements, err := uc.invRepo.FindMovementsByBikeID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// GetMovement obtiene una entrada del libro por ID.
func (uc *UseCase) GetMovement(ctx context.Context, id string) (*dto.MovementResponse, error) {
	movement, err := uc.invRepo.FindMovementByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(movement), nil
}

// GetLowStockAlerts recorre el catálogo, deriva el stock de cada bicicleta y
// devuelve las que están en o bajo el umbral configurado.
func (uc *UseCase) GetLowStockAlerts(ctx context.Context) ([]*dto.LowStockAlertDTO, error) {
	bikes, err := uc.bikeRepo.FindAll(ctx, repository.BikeFilter{})
	if err != nil {
		return nil, err
	}
	stockByBike := make(map[string]int, len(bikes))
	namesByBike := make(map[string]string, len(bikes))
	for _, b := range bikes {
		movements, err := uc.invRepo.FindMovementsByBikeID(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		stockByBike[b.ID] = inventory.CalculateCurrentStock(movements)
		namesByBike[b.ID] = b.Name
	}

	alerts := inventory.GetLowStockAlerts(stockByBike, uc.lowStockThreshold)
	out := make([]*dto.LowStockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, &dto.LowStockAlertDTO{
			BikeID:       a.BikeID,
			BikeName:     namesByBike[a.BikeID],
			CurrentStock: a.CurrentStock,
		})
	}
	return out, nil
}

func (uc *UseCase) publish(ctx context.Context, events []entity.DomainEvent) {
	if uc.events != nil && len(events) > 0 {
		uc.events.Publish(ctx, events...)
	}
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		BikeID:    m.BikeID,
		Type:      string(m.Type),
		Reason:    string(m.Reason),
		Quantity:  m.Quantity,
		Date:      m.Date,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}
