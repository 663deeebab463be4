package repository

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

// SaleFilter filtros opcionales para listar ventas.
type SaleFilter struct {
	CustomerID string
	Status     string
}

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Save(ctx context.Context, sale *entity.Sale) error
	FindByID(ctx context.Context, id string) (*entity.Sale, error)
	FindAll(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
