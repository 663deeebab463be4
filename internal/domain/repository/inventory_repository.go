package repository

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia del libro de
// movimientos. Append-only: no hay update ni delete.
// FindMovementsByBikeId devuelve el historial en orden cronológico.
type InventoryRepository interface {
	SaveMovement(ctx context.Context, movement *entity.InventoryMovement) error
	FindMovementsByBikeID(ctx context.Context, bikeID string) ([]*entity.InventoryMovement, error)
	FindMovementByID(ctx context.Context, id string) (*entity.InventoryMovement, error)
}
