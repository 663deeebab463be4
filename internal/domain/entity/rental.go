package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/valueobject"
)

// Estados de un alquiler.
type RentalStatus string

const (
	RentalStatusReserved  RentalStatus = "RESERVED"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusReturned  RentalStatus = "RETURNED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// rentalTransitions: solo RESERVED->ACTIVE, RESERVED->CANCELLED y
// ACTIVE->RETURNED. Cancelar un alquiler activo se rechaza.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusReserved:  {RentalStatusActive, RentalStatusCancelled},
	RentalStatusActive:    {RentalStatusReturned},
	RentalStatusReturned:  {},
	RentalStatusCancelled: {},
}

// RentalItem es una bicicleta alquilada con la tarifa diaria pactada.
// La tarifa se congela al crear el alquiler; cambios de tarifa posteriores
// en la bicicleta no afectan alquileres existentes.
type RentalItem struct {
	BikeID         string
	DailyRateCents int64
}

// Rental representa un alquiler de una o más bicicletas por un período.
// TotalCents es derivado: suma de tarifas diarias × días del período.
type Rental struct {
	eventRecorder
	ID         string
	CustomerID string
	Items      []RentalItem
	Period     valueobject.DateRange
	Status     RentalStatus
	TotalCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewRental crea el alquiler en RESERVED, valida invariantes, calcula el
// total y emite RentalCreated.
func NewRental(customerID string, items []RentalItem, period valueobject.DateRange) (*Rental, error) {
	if customerID == "" {
		return nil, domain.NewValidationError("customerId", "es obligatorio")
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "requiere al menos una bicicleta")
	}
	for _, it := range items {
		if it.BikeID == "" {
			return nil, domain.NewValidationError("items.bikeId", "es obligatorio")
		}
		if it.DailyRateCents < 1 {
			return nil, domain.NewValidationError("items.dailyRateCents", "debe ser >= 1")
		}
	}
	now := time.Now()
	r := &Rental{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Items:      items,
		Period:     period,
		Status:     RentalStatusReserved,
		TotalCents: rentalTotal(items, period),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.record(RentalCreated{baseEvent: newBaseEvent(r.ID), CustomerID: customerID, TotalCents: r.TotalCents})
	return r, nil
}

// rentalTotal = suma de tarifas diarias × días completos del período.
func rentalTotal(items []RentalItem, period valueobject.DateRange) int64 {
	perDay := valueobject.NewMoney(0)
	for _, it := range items {
		perDay = perDay.Add(valueobject.NewMoney(it.DailyRateCents))
	}
	return perDay.MulInt(period.DurationInDays()).Cents()
}

// ReconstituteRental rehidrata un alquiler desde almacenamiento sin validar ni emitir eventos.
func ReconstituteRental(id, customerID string, items []RentalItem, period valueobject.DateRange, status RentalStatus, totalCents int64, createdAt, updatedAt time.Time) *Rental {
	return &Rental{
		ID:         id,
		CustomerID: customerID,
		Items:      items,
		Period:     period,
		Status:     status,
		TotalCents: totalCents,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func (r *Rental) transitionTo(target RentalStatus) error {
	for _, allowed := range rentalTransitions[r.Status] {
		if allowed == target {
			from := r.Status
			r.Status = target
			r.UpdatedAt = time.Now()
			r.record(RentalStatusChanged{baseEvent: newBaseEvent(r.ID), From: from, To: target})
			return nil
		}
	}
	return domain.NewInvalidTransitionError("rental", string(r.Status), string(target))
}

// Start activa un alquiler reservado.
func (r *Rental) Start() error { return r.transitionTo(RentalStatusActive) }

// Return cierra un alquiler activo (terminal).
func (r *Rental) Return() error { return r.transitionTo(RentalStatusReturned) }

// Cancel anula un alquiler reservado (terminal).
func (r *Rental) Cancel() error { return r.transitionTo(RentalStatusCancelled) }

// Extend reemplaza el fin del período por newEndDate y recalcula el total.
// Solo es válido con el alquiler ACTIVE y con newEndDate estrictamente
// posterior al fin actual.
func (r *Rental) Extend(newEndDate time.Time) error {
	if r.Status != RentalStatusActive {
		return domain.NewInvalidTransitionError("rental", string(r.Status), "EXTENDED")
	}
	if !newEndDate.After(r.Period.End()) {
		return domain.NewValidationError("newEndDate", "debe ser posterior al fin actual del período")
	}
	period, err := r.Period.WithEnd(newEndDate)
	if err != nil {
		return err
	}
	r.Period = period
	r.TotalCents = rentalTotal(r.Items, period)
	r.UpdatedAt = time.Now()
	r.record(RentalExtended{baseEvent: newBaseEvent(r.ID), NewEndDate: newEndDate, TotalCents: r.TotalCents})
	return nil
}
