package repository

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

// BikeFilter filtros opcionales para listar bicicletas; vacío = sin filtro.
type BikeFilter struct {
	Type   string
	Status string
	Brand  string
}

// BikeRepository define el puerto de persistencia para bicicletas.
// FindByID devuelve (nil, nil) cuando no existe.
type BikeRepository interface {
	Save(ctx context.Context, bike *entity.Bike) error
	FindByID(ctx context.Context, id string) (*entity.Bike, error)
	FindAll(ctx context.Context, filter BikeFilter) ([]*entity.Bike, error)
	Delete(ctx context.Context, id string) error
}
