package rental

import (
	"context"
	"fmt"

	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/application/ports"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/inventory"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
	"github.com/tu-usuario/bicirent-pro/internal/domain/valueobject"
)

// UseCase orquesta los alquileres sobre los agregados Rental, Bike y el libro
// de inventario. Ninguna operación es atómica a nivel de almacenamiento: el
// contrato es el orden de pasos documentado en cada método, y los efectos ya
// aplicados NO se revierten si un paso posterior falla (limitación conocida,
// ver DESIGN.md).
type UseCase struct {
	rentalRepo repository.RentalRepository
	bikeRepo   repository.BikeRepository
	invRepo    repository.InventoryRepository
	events     ports.EventPublisher
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	rentalRepo repository.RentalRepository,
	bikeRepo repository.BikeRepository,
	invRepo repository.InventoryRepository,
	events ports.EventPublisher,
) *UseCase {
	return &UseCase{
		rentalRepo: rentalRepo,
		bikeRepo:   bikeRepo,
		invRepo:    invRepo,
		events:     events,
	}
}

// CreateRental verifica disponibilidad de CADA bicicleta contra el libro de
// movimientos ANTES de construir o persistir nada: si alguna no tiene stock
// se aborta con ErrNotAvailable sin escrituras parciales. La tarifa diaria en
// 0 toma la vigente de la bicicleta.
func (uc *UseCase) CreateRental(ctx context.Context, in dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	period, err := valueobject.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "requiere al menos una bicicleta")
	}

	items := make([]entity.RentalItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.BikeID == "" {
			return nil, domain.NewValidationError("items.bikeId", "es obligatorio")
		}
		movements, err := uc.invRepo.FindMovementsByBikeID(ctx, it.BikeID)
		if err != nil {
			return nil, err
		}
		if !inventory.IsAvailableForRental(movements) {
			return nil, fmt.Errorf("%w: bicicleta %s", domain.ErrNotAvailable, it.BikeID)
		}
		rate := it.DailyRateCents
		if rate == 0 {
			bike, err := uc.bikeRepo.FindByID(ctx, it.BikeID)
			if err != nil {
				return nil, err
			}
			if bike == nil {
				return nil, domain.ErrNotFound
			}
			rate = bike.DailyRateCents
		}
		items = append(items, entity.RentalItem{BikeID: it.BikeID, DailyRateCents: rate})
	}

	rental, err := entity.NewRental(in.CustomerID, items, period)
	if err != nil {
		return nil, err
	}
	if err := uc.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	uc.publish(ctx, rental.PullEvents())
	return toRentalResponse(rental), nil
}

// UpdateRentalStatus aplica start, return o cancel. La máquina de estados del
// alquiler es la única compuerta: falla rápido sin persistir nada. En start y
// return los efectos secundarios (libro + estado de bicicletas) se aplican
// ítem por ítem y el alquiler se persiste al FINAL; bicicletas ausentes del
// repositorio se omiten sin fallar la operación.
func (uc *UseCase) UpdateRentalStatus(ctx context.Context, rentalID, action string) (*dto.RentalResponse, error) {
	rental, err := uc.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrNotFound
	}

	switch action {
	case "start":
		if err := rental.Start(); err != nil {
			return nil, err
		}
		if err := uc.applyStartSideEffects(ctx, rental); err != nil {
			return nil, err
		}
	case "return":
		if err := rental.Return(); err != nil {
			return nil, err
		}
		if err := uc.applyReturnSideEffects(ctx, rental); err != nil {
			return nil, err
		}
	case "cancel":
		// Cancelar solo toca el alquiler; nunca hubo salida de inventario.
		if err := rental.Cancel(); err != nil {
			return nil, err
		}
	default:
		return nil, domain.NewValidationError("action", "debe ser start, return o cancel")
	}

	if err := uc.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	uc.publish(ctx, rental.PullEvents())
	return toRentalResponse(rental), nil
}

// applyStartSideEffects registra una salida OUT/RENTAL_OUT por ítem y pasa
// cada bicicleta encontrada a RENTED, persistiendo cada efecto según se
// produce. Sin rollback de efectos ya aplicados si un ítem posterior falla.
func (uc *UseCase) applyStartSideEffects(ctx context.Context, rental *entity.Rental) error {
	for _, item := range rental.Items {
		movement, err := entity.NewInventoryMovement(entity.NewMovementParams{
			BikeID:   item.BikeID,
			Type:     entity.MovementTypeOUT,
			Reason:   entity.MovementReasonRentalOut,
			Quantity: 1,
			Notes:    "alquiler " + rental.ID,
		})
		if err != nil {
			return err
		}
		if err := uc.invRepo.SaveMovement(ctx, movement); err != nil {
			return err
		}
		uc.publish(ctx, movement.PullEvents())

		bike, err := uc.bikeRepo.FindByID(ctx, item.BikeID)
		if err != nil {
			return err
		}
		if bike == nil {
			continue // referencia huérfana: se omite sin fallar
		}
		if err := bike.MarkAsRented(); err != nil {
			return err
		}
		if err := uc.bikeRepo.Save(ctx, bike); err != nil {
			return err
		}
		uc.publish(ctx, bike.PullEvents())
	}
	return nil
}

// applyReturnSideEffects es el simétrico de start: IN/RENTAL_RETURN por ítem
// y bicicletas de vuelta a AVAILABLE.
func (uc *UseCase) applyReturnSideEffects(ctx context.Context, rental *entity.Rental) error {
	for _, item := range rental.Items {
		movement, err := entity.NewInventoryMovement(entity.NewMovementParams{
			BikeID:   item.BikeID,
			Type:     entity.MovementTypeIN,
			Reason:   entity.MovementReasonRentalReturn,
			Quantity: 1,
			Notes:    "devolución alquiler " + rental.ID,
		})
		if err != nil {
			return err
		}
		if err := uc.invRepo.SaveMovement(ctx, movement); err != nil {
			return err
		}
		uc.publish(ctx, movement.PullEvents())

		bike, err := uc.bikeRepo.FindByID(ctx, item.BikeID)
		if err != nil {
			return err
		}
		if bike == nil {
			continue
		}
		if err := bike.MarkAsReturned(); err != nil {
			return err
		}
		if err := uc.bikeRepo.Save(ctx, bike); err != nil {
			return err
		}
		uc.publish(ctx, bike.PullEvents())
	}
	return nil
}

// ExtendRental extiende el período de un alquiler activo y persiste una sola vez.
func (uc *UseCase) ExtendRental(ctx context.Context, rentalID string, in dto.ExtendRentalRequest) (*dto.RentalResponse, error) {
	rental, err := uc.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrNotFound
	}
	if err := rental.Extend(in.NewEndDate); err != nil {
		return nil, err
	}
	if err := uc.rentalRepo.Save(ctx, rental); err != nil {
		return nil, err
	}
	uc.publish(ctx, rental.PullEvents())
	return toRentalResponse(rental), nil
}

// GetRental obtiene un alquiler por ID.
func (uc *UseCase) GetRental(ctx context.Context, id string) (*dto.RentalResponse, error) {
	rental, err := uc.rentalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrNotFound
	}
	return toRentalResponse(rental), nil
}

// ListRentals lista alquileres con filtros opcionales por cliente y estado.
func (uc *UseCase) ListRentals(ctx context.Context, filter repository.RentalFilter) ([]*dto.RentalResponse, error) {
	rentals, err := uc.rentalRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, toRentalResponse(r))
	}
	return out, nil
}

func (uc *UseCase) publish(ctx context.Context, events []entity.DomainEvent) {
	if uc.events != nil && len(events) > 0 {
		uc.events.Publish(ctx, events...)
	}
}

func toRentalResponse(r *entity.Rental) *dto.RentalResponse {
	items := make([]dto.RentalItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RentalItemResponse{BikeID: it.BikeID, DailyRateCents: it.DailyRateCents})
	}
	return &dto.RentalResponse{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		Items:        items,
		StartDate:    r.Period.Start(),
		EndDate:      r.Period.End(),
		DurationDays: r.Period.DurationInDays(),
		Status:       string(r.Status),
		TotalCents:   r.TotalCents,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
