package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
)

// Estados de una bicicleta.
type BikeStatus string

const (
	BikeStatusAvailable   BikeStatus = "AVAILABLE"
	BikeStatusRented      BikeStatus = "RENTED"
	BikeStatusSold        BikeStatus = "SOLD"
	BikeStatusMaintenance BikeStatus = "MAINTENANCE"
	BikeStatusRetired     BikeStatus = "RETIRED"
)

// bikeTransitions: estado actual -> estados destino permitidos.
// SOLD y RETIRED son terminales.
var bikeTransitions = map[BikeStatus][]BikeStatus{
	BikeStatusAvailable:   {BikeStatusRented, BikeStatusSold, BikeStatusMaintenance, BikeStatusRetired},
	BikeStatusRented:      {BikeStatusAvailable, BikeStatusMaintenance},
	BikeStatusSold:        {},
	BikeStatusMaintenance: {BikeStatusAvailable, BikeStatusRetired},
	BikeStatusRetired:     {},
}

// Bike representa una bicicleta del catálogo (alquiler y venta).
// El estado solo cambia a través de los métodos de transición.
type Bike struct {
	eventRecorder
	ID             string
	Name           string
	Brand          string
	Model          string
	Type           string // urbana, mtb, ruta, eléctrica...
	Size           string
	PriceCents     int64 // precio de venta en centavos
	DailyRateCents int64 // tarifa diaria de alquiler en centavos
	Status         BikeStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBikeParams datos para crear una bicicleta.
type NewBikeParams struct {
	Name           string
	Brand          string
	Model          string
	Type           string
	Size           string
	PriceCents     int64
	DailyRateCents int64
}

// NewBike crea la bicicleta en estado AVAILABLE, valida invariantes y emite BikeCreated.
func NewBike(p NewBikeParams) (*Bike, error) {
	if err := validateBikeFields(p); err != nil {
		return nil, err
	}
	now := time.Now()
	b := &Bike{
		ID:             uuid.New().String(),
		Name:           p.Name,
		Brand:          p.Brand,
		Model:          p.Model,
		Type:           p.Type,
		Size:           p.Size,
		PriceCents:     p.PriceCents,
		DailyRateCents: p.DailyRateCents,
		Status:         BikeStatusAvailable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	b.record(BikeCreated{baseEvent: newBaseEvent(b.ID), Status: b.Status})
	return b, nil
}

func validateBikeFields(p NewBikeParams) error {
	switch {
	case p.Name == "":
		return domain.NewValidationError("name", "es obligatorio")
	case p.Brand == "":
		return domain.NewValidationError("brand", "es obligatorio")
	case p.Model == "":
		return domain.NewValidationError("model", "es obligatorio")
	case p.Type == "":
		return domain.NewValidationError("type", "es obligatorio")
	case p.Size == "":
		return domain.NewValidationError("size", "es obligatorio")
	case p.PriceCents < 1:
		return domain.NewValidationError("priceCents", "debe ser >= 1")
	case p.DailyRateCents < 1:
		return domain.NewValidationError("dailyRateCents", "debe ser >= 1")
	}
	return nil
}

// ReconstituteBike rehidrata una bicicleta desde almacenamiento.
// No valida ni emite eventos: la persistencia es una ida y vuelta confiable.
func ReconstituteBike(id, name, brand, model, bikeType, size string, priceCents, dailyRateCents int64, status BikeStatus, createdAt, updatedAt time.Time) *Bike {
	return &Bike{
		ID:             id,
		Name:           name,
		Brand:          brand,
		Model:          model,
		Type:           bikeType,
		Size:           size,
		PriceCents:     priceCents,
		DailyRateCents: dailyRateCents,
		Status:         status,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// transitionTo aplica la tabla de transiciones; en éxito actualiza UpdatedAt
// y emite BikeStatusChanged.
func (b *Bike) transitionTo(target BikeStatus) error {
	for _, allowed := range bikeTransitions[b.Status] {
		if allowed == target {
			from := b.Status
			b.Status = target
			b.UpdatedAt = time.Now()
			b.record(BikeStatusChanged{baseEvent: newBaseEvent(b.ID), From: from, To: target})
			return nil
		}
	}
	return domain.NewInvalidTransitionError("bike", string(b.Status), string(target))
}

// MarkAsRented pasa la bicicleta a RENTED.
func (b *Bike) MarkAsRented() error { return b.transitionTo(BikeStatusRented) }

// MarkAsSold pasa la bicicleta a SOLD (terminal).
func (b *Bike) MarkAsSold() error { return b.transitionTo(BikeStatusSold) }

// SendToMaintenance pasa la bicicleta a MAINTENANCE.
func (b *Bike) SendToMaintenance() error { return b.transitionTo(BikeStatusMaintenance) }

// Retire pasa la bicicleta a RETIRED (terminal).
func (b *Bike) Retire() error { return b.transitionTo(BikeStatusRetired) }

// MarkAsReturned vuelve la bicicleta a AVAILABLE. Es válido desde RENTED y
// también desde MAINTENANCE: una bicicleta devuelta con reparación pendiente
// queda disponible igualmente.
func (b *Bike) MarkAsReturned() error {
	if b.Status != BikeStatusRented && b.Status != BikeStatusMaintenance {
		return domain.NewInvalidTransitionError("bike", string(b.Status), string(BikeStatusAvailable))
	}
	return b.transitionTo(BikeStatusAvailable)
}

// UpdateBikeParams campos opcionales para actualizar; nil = sin cambio.
type UpdateBikeParams struct {
	Name           *string
	Brand          *string
	Model          *string
	Type           *string
	Size           *string
	PriceCents     *int64
	DailyRateCents *int64
}

// Update modifica solo los campos suministrados, re-validando cada uno.
// Es independiente del estado de la bicicleta.
func (b *Bike) Update(p UpdateBikeParams) error {
	if p.Name != nil && *p.Name == "" {
		return domain.NewValidationError("name", "es obligatorio")
	}
	if p.Brand != nil && *p.Brand == "" {
		return domain.NewValidationError("brand", "es obligatorio")
	}
	if p.Model != nil && *p.Model == "" {
		return domain.NewValidationError("model", "es obligatorio")
	}
	if p.Type != nil && *p.Type == "" {
		return domain.NewValidationError("type", "es obligatorio")
	}
	if p.Size != nil && *p.Size == "" {
		return domain.NewValidationError("size", "es obligatorio")
	}
	if p.PriceCents != nil && *p.PriceCents < 1 {
		return domain.NewValidationError("priceCents", "debe ser >= 1")
	}
	if p.DailyRateCents != nil && *p.DailyRateCents < 1 {
		return domain.NewValidationError("dailyRateCents", "debe ser >= 1")
	}

	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Brand != nil {
		b.Brand = *p.Brand
	}
	if p.Model != nil {
		b.Model = *p.Model
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Size != nil {
		b.Size = *p.Size
	}
	if p.PriceCents != nil {
		b.PriceCents = *p.PriceCents
	}
	if p.DailyRateCents != nil {
		b.DailyRateCents = *p.DailyRateCents
	}
	b.UpdatedAt = time.Now()
	return nil
}
