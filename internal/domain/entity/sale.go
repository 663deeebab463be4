package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/valueobject"
)

// Estados de una venta.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusConfirmed SaleStatus = "CONFIRMED"
	SaleStatusCancelled SaleStatus = "CANCELLED"
)

// saleTransitions: PENDING -> CONFIRMED | CANCELLED; ambos terminales.
var saleTransitions = map[SaleStatus][]SaleStatus{
	SaleStatusPending:   {SaleStatusConfirmed, SaleStatusCancelled},
	SaleStatusConfirmed: {},
	SaleStatusCancelled: {},
}

// SaleItem es una bicicleta vendida con el precio pactado.
type SaleItem struct {
	BikeID     string
	PriceCents int64
}

// Sale representa la venta de una o más bicicletas.
// TotalCents es derivado: suma de los precios de los ítems.
type Sale struct {
	eventRecorder
	ID         string
	CustomerID string
	Items      []SaleItem
	Status     SaleStatus
	TotalCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSale crea la venta en PENDING, valida invariantes y emite SaleCreated.
func NewSale(customerID string, items []SaleItem) (*Sale, error) {
	if customerID == "" {
		return nil, domain.NewValidationError("customerId", "es obligatorio")
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "requiere al menos una bicicleta")
	}
	total := valueobject.NewMoney(0)
	for _, it := range items {
		if it.BikeID == "" {
			return nil, domain.NewValidationError("items.bikeId", "es obligatorio")
		}
		if it.PriceCents < 1 {
			return nil, domain.NewValidationError("items.priceCents", "debe ser >= 1")
		}
		total = total.Add(valueobject.NewMoney(it.PriceCents))
	}
	now := time.Now()
	s := &Sale{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Items:      items,
		Status:     SaleStatusPending,
		TotalCents: total.Cents(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.record(SaleCreated{baseEvent: newBaseEvent(s.ID), CustomerID: customerID, TotalCents: s.TotalCents})
	return s, nil
}

// ReconstituteSale rehidrata una venta desde almacenamiento sin validar ni emitir eventos.
func ReconstituteSale(id, customerID string, items []SaleItem, status SaleStatus, totalCents int64, createdAt, updatedAt time.Time) *Sale {
	return &Sale{
		ID:         id,
		CustomerID: customerID,
		Items:      items,
		Status:     status,
		TotalCents: totalCents,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func (s *Sale) transitionTo(target SaleStatus) error {
	for _, allowed := range saleTransitions[s.Status] {
		if allowed == target {
			from := s.Status
			s.Status = target
			s.UpdatedAt = time.Now()
			s.record(SaleStatusChanged{baseEvent: newBaseEvent(s.ID), From: from, To: target})
			return nil
		}
	}
	return domain.NewInvalidTransitionError("sale", string(s.Status), string(target))
}

// Confirm confirma la venta (terminal).
func (s *Sale) Confirm() error { return s.transitionTo(SaleStatusConfirmed) }

// Cancel anula la venta (terminal).
func (s *Sale) Cancel() error { return s.transitionTo(SaleStatusCancelled) }

// CalculateTVA devuelve el impuesto (TVA/IVA) sobre el total, redondeado al
// centavo más cercano. Consulta pura: no modifica la venta.
func (s *Sale) CalculateTVA(ratePercent float64) int64 {
	return valueobject.NewMoney(s.TotalCents).Percent(ratePercent).Cents()
}
