package entity

import "time"

// DomainEvent es un registro inmutable de algo que ocurrió en un agregado.
// Los agregados los acumulan y el caso de uso los drena con PullEvents tras
// cada comando; no hay broker ni cola en el dominio.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

type baseEvent struct {
	aggregateID string
	at          time.Time
}

func newBaseEvent(aggregateID string) baseEvent {
	return baseEvent{aggregateID: aggregateID, at: time.Now()}
}

func (e baseEvent) AggregateID() string   { return e.aggregateID }
func (e baseEvent) OccurredAt() time.Time { return e.at }

// BikeCreated se emite al crear una bicicleta vía factoría.
type BikeCreated struct {
	baseEvent
	Status BikeStatus
}

func (BikeCreated) EventName() string { return "BikeCreated" }

// BikeStatusChanged se emite en cada transición de estado exitosa.
type BikeStatusChanged struct {
	baseEvent
	From BikeStatus
	To   BikeStatus
}

func (BikeStatusChanged) EventName() string { return "BikeStatusChanged" }

// RentalCreated se emite al crear un alquiler.
type RentalCreated struct {
	baseEvent
	CustomerID string
	TotalCents int64
}

func (RentalCreated) EventName() string { return "RentalCreated" }

// RentalStatusChanged se emite en cada transición de estado del alquiler.
type RentalStatusChanged struct {
	baseEvent
	From RentalStatus
	To   RentalStatus
}

func (RentalStatusChanged) EventName() string { return "RentalStatusChanged" }

// RentalExtended se emite al extender el período de un alquiler activo.
type RentalExtended struct {
	baseEvent
	NewEndDate time.Time
	TotalCents int64
}

func (RentalExtended) EventName() string { return "RentalExtended" }

// SaleCreated se emite al crear una venta.
type SaleCreated struct {
	baseEvent
	CustomerID string
	TotalCents int64
}

func (SaleCreated) EventName() string { return "SaleCreated" }

// SaleStatusChanged se emite al confirmar o cancelar una venta.
type SaleStatusChanged struct {
	baseEvent
	From SaleStatus
	To   SaleStatus
}

func (SaleStatusChanged) EventName() string { return "SaleStatusChanged" }

// InventoryMovementRecorded se emite al registrar un movimiento en el libro.
type InventoryMovementRecorded struct {
	baseEvent
	BikeID   string
	Type     MovementType
	Reason   MovementReason
	Quantity int
}

func (InventoryMovementRecorded) EventName() string { return "InventoryMovementRecorded" }

// eventRecorder acumula eventos pendientes; se embebe en cada agregado.
type eventRecorder struct {
	pending []DomainEvent
}

func (r *eventRecorder) record(e DomainEvent) {
	r.pending = append(r.pending, e)
}

// PullEvents devuelve los eventos pendientes y vacía la lista.
func (r *eventRecorder) PullEvents() []DomainEvent {
	out := r.pending
	r.pending = nil
	return out
}

// PendingEvents devuelve los eventos sin drenarlos (útil en tests).
func (r *eventRecorder) PendingEvents() []DomainEvent {
	return r.pending
}
