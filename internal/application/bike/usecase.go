package bike

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/application/ports"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

// UseCase casos de uso del catálogo de bicicletas.
type UseCase struct {
	bikeRepo repository.BikeRepository
	events   ports.EventPublisher
}

// NewUseCase construye el caso de uso.
func NewUseCase(bikeRepo repository.BikeRepository, events ports.EventPublisher) *UseCase {
	return &UseCase{bikeRepo: bikeRepo, events: events}
}

// CreateBike valida vía factoría, persiste y publica BikeCreated.
func (uc *UseCase) CreateBike(ctx context.Context, in dto.CreateBikeRequest) (*dto.BikeResponse, error) {
	bike, err := entity.NewBike(entity.NewBikeParams{
		Name:           in.Name,
		Brand:          in.Brand,
		Model:          in.Model,
		Type:           in.Type,
		Size:           in.Size,
		PriceCents:     in.PriceCents,
		DailyRateCents: in.DailyRateCents,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.bikeRepo.Save(ctx, bike); err != nil {
		return nil, err
	}
	uc.publish(ctx, bike.PullEvents())
	return toBikeResponse(bike), nil
}

// GetBike obtiene una bicicleta por ID.
func (uc *UseCase) GetBike(ctx context.Context, id string) (*dto.BikeResponse, error) {
	bike, err := uc.bikeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, domain.ErrNotFound
	}
	return toBikeResponse(bike), nil
}

// ListBikes lista bicicletas con filtros opcionales por tipo, estado y marca.
func (uc *UseCase) ListBikes(ctx context.Context, filter repository.BikeFilter) ([]*dto.BikeResponse, error) {
	bikes, err := uc.bikeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BikeResponse, 0, len(bikes))
	for _, b := range bikes {
		out = append(out, toBikeResponse(b))
	}
	return out, nil
}

// UpdateBike modifica solo los campos suministrados (independiente del estado).
func (uc *UseCase) UpdateBike(ctx context.Context, id string, in dto.UpdateBikeRequest) (*dto.BikeResponse, error) {
	bike, err := uc.bikeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, domain.ErrNotFound
	}
	if err := bike.Update(entity.UpdateBikeParams{
		Name:           in.Name,
		Brand:          in.Brand,
		Model:          in.Model,
		Type:           in.Type,
		Size:           in.Size,
		PriceCents:     in.PriceCents,
		DailyRateCents: in.DailyRateCents,
	}); err != nil {
		return nil, err
	}
	if err := uc.bikeRepo.Save(ctx, bike); err != nil {
		return nil, err
	}
	return toBikeResponse(bike), nil
}

// UpdateBikeStatus aplica la acción de estado solicitada. El método de la
// entidad falla rápido con transición inválida y no se persiste nada.
// Acciones: rent, return, sell, maintenance, retire.
func (uc *UseCase) UpdateBikeStatus(ctx context.Context, id, action string) (*dto.BikeResponse, error) {
	bike, err := uc.bikeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bike == nil {
		return nil, domain.ErrNotFound
	}

	switch action {
	case "rent":
		err = bike.MarkAsRented()
	case "return":
		err = bike.MarkAsReturned()
	case "sell":
		err = bike.MarkAsSold()
	case "maintenance":
		err = bike.SendToMaintenance()
	case "retire":
		err = bike.Retire()
	default:
		return nil, domain.NewValidationError("action", "debe ser rent, return, sell, maintenance o retire")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.bikeRepo.Save(ctx, bike); err != nil {
		return nil, err
	}
	uc.publish(ctx, bike.PullEvents())
	return toBikeResponse(bike), nil
}

// DeleteBike elimina la bicicleta del catálogo.
func (uc *UseCase) DeleteBike(ctx context.Context, id string) error {
	bike, err := uc.bikeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bike == nil {
		return domain.ErrNotFound
	}
	return uc.bikeRepo.Delete(ctx, id)
}

func (uc *UseCase) publish(ctx context.Context, events []entity.DomainEvent) {
	if uc.events != nil && len(events) > 0 {
		uc.events.Publish(ctx, events...)
	}
}

func toBikeResponse(b *entity.Bike) *dto.BikeResponse {
	return &dto.BikeResponse{
		ID:             b.ID,
		Name:           b.Name,
		Brand:          b.Brand,
		Model:          b.Model,
		Type:           b.Type,
		Size:           b.Size,
		PriceCents:     b.PriceCents,
		DailyRateCents: b.DailyRateCents,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
