package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
)

// Tipos de movimiento de inventario. La dirección la define el tipo,
// nunca el signo de la cantidad.
type MovementType string

const (
	MovementTypeIN         MovementType = "IN"         // entrada
	MovementTypeOUT        MovementType = "OUT"        // salida
	MovementTypeADJUSTMENT MovementType = "ADJUSTMENT" // ajuste (suma)
)

// Causas de negocio de un movimiento.
type MovementReason string

const (
	MovementReasonPurchase     MovementReason = "PURCHASE"
	MovementReasonSale         MovementReason = "SALE"
	MovementReasonRentalOut    MovementReason = "RENTAL_OUT"
	MovementReasonRentalReturn MovementReason = "RENTAL_RETURN"
	MovementReasonMaintenance  MovementReason = "MAINTENANCE"
	MovementReasonLoss         MovementReason = "LOSS"
	MovementReasonAdjustment   MovementReason = "ADJUSTMENT"
)

var validMovementTypes = map[MovementType]bool{
	MovementTypeIN:         true,
	MovementTypeOUT:        true,
	MovementTypeADJUSTMENT: true,
}

var validMovementReasons = map[MovementReason]bool{
	MovementReasonPurchase:     true,
	MovementReasonSale:         true,
	MovementReasonRentalOut:    true,
	MovementReasonRentalReturn: true,
	MovementReasonMaintenance:  true,
	MovementReasonLoss:         true,
	MovementReasonAdjustment:   true,
}

// InventoryMovement es una entrada inmutable del libro de inventario.
// Nunca se modifica ni se borra; el stock siempre se re-deriva del historial.
type InventoryMovement struct {
	eventRecorder
	ID        string
	BikeID    string // referencia, no propiedad
	Type      MovementType
	Reason    MovementReason
	Quantity  int // siempre > 0
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// NewMovementParams datos para registrar un movimiento.
// Date en nil usa la hora actual.
type NewMovementParams struct {
	BikeID   string
	Type     MovementType
	Reason   MovementReason
	Quantity int
	Date     *time.Time
	Notes    string
}

// NewInventoryMovement valida y crea la entrada del libro, emitiendo
// InventoryMovementRecorded. No consulta ni muta stock: el libro es
// append-only y la prevención de sobregiro vive en la orquestación.
func NewInventoryMovement(p NewMovementParams) (*InventoryMovement, error) {
	if p.BikeID == "" {
		return nil, domain.NewValidationError("bikeId", "es obligatorio")
	}
	if p.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "debe ser > 0")
	}
	if !validMovementTypes[p.Type] {
		return nil, domain.NewValidationError("type", "debe ser IN, OUT o ADJUSTMENT")
	}
	if !validMovementReasons[p.Reason] {
		return nil, domain.NewValidationError("reason", "no es una causa válida")
	}
	now := time.Now()
	date := now
	if p.Date != nil {
		date = *p.Date
	}
	m := &InventoryMovement{
		ID:        uuid.New().String(),
		BikeID:    p.BikeID,
		Type:      p.Type,
		Reason:    p.Reason,
		Quantity:  p.Quantity,
		Date:      date,
		Notes:     p.Notes,
		CreatedAt: now,
	}
	m.record(InventoryMovementRecorded{
		baseEvent: newBaseEvent(m.ID),
		BikeID:    m.BikeID,
		Type:      m.Type,
		Reason:    m.Reason,
		Quantity:  m.Quantity,
	})
	return m, nil
}

// ReconstituteInventoryMovement rehidrata una entrada del libro sin validar ni emitir eventos.
func ReconstituteInventoryMovement(id, bikeID string, mType MovementType, reason MovementReason, quantity int, date time.Time, notes string, createdAt time.Time) *InventoryMovement {
	return &InventoryMovement{
		ID:        id,
		BikeID:    bikeID,
		Type:      mType,
		Reason:    reason,
		Quantity:  quantity,
		Date:      date,
		Notes:     notes,
		CreatedAt: createdAt,
	}
}
