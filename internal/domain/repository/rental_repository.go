package repository

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

// RentalFilter filtros opcionales para listar alquileres.
type RentalFilter struct {
	CustomerID string
	Status     string
}

// RentalRepository define el puerto de persistencia para alquileres.
// Save persiste cabecera e ítems; FindByID devuelve (nil, nil) si no existe.
type RentalRepository interface {
	Save(ctx context.Context, rental *entity.Rental) error
	FindByID(ctx context.Context, id string) (*entity.Rental, error)
	FindAll(ctx context.Context, filter RentalFilter) ([]*entity.Rental, error)
}
