package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

func TestNewInventoryMovement_Valido(t *testing.T) {
	m, err := entity.NewInventoryMovement(entity.NewMovementParams{
		BikeID:   "bike-1",
		Type:     entity.MovementTypeIN,
		Reason:   entity.MovementReasonPurchase,
		Quantity: 5,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.False(t, m.Date.IsZero(), "sin fecha explícita debe usarse la hora actual")

	events := m.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "InventoryMovementRecorded", events[0].EventName())
}

func TestNewInventoryMovement_FechaExplicita(t *testing.T) {
	fecha := time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)
	m, err := entity.NewInventoryMovement(entity.NewMovementParams{
		BikeID:   "bike-1",
		Type:     entity.MovementTypeADJUSTMENT,
		Reason:   entity.MovementReasonAdjustment,
		Quantity: 2,
		Date:     &fecha,
	})
	require.NoError(t, err)
	assert.Equal(t, fecha, m.Date)
}

func TestNewInventoryMovement_Validaciones(t *testing.T) {
	base := entity.NewMovementParams{
		BikeID: "bike-1", Type: entity.MovementTypeOUT,
		Reason: entity.MovementReasonSale, Quantity: 1,
	}

	p := base
	p.BikeID = ""
	_, err := entity.NewInventoryMovement(p)
	assert.ErrorIs(t, err, domain.ErrValidation)

	p = base
	p.Quantity = 0
	_, err = entity.NewInventoryMovement(p)
	assert.ErrorIs(t, err, domain.ErrValidation, "cantidad 0 debe rechazarse")

	p = base
	p.Quantity = -3
	_, err = entity.NewInventoryMovement(p)
	assert.ErrorIs(t, err, domain.ErrValidation,
		"la dirección la da el tipo, nunca una cantidad negativa")

	p = base
	p.Type = "TRANSFER"
	_, err = entity.NewInventoryMovement(p)
	assert.ErrorIs(t, err, domain.ErrValidation)

	p = base
	p.Reason = "OTRA"
	_, err = entity.NewInventoryMovement(p)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReconstituteInventoryMovement_SinEventos(t *testing.T) {
	m, err := entity.NewInventoryMovement(entity.NewMovementParams{
		BikeID:   "bike-1",
		Type:     entity.MovementTypeIN,
		Reason:   entity.MovementReasonPurchase,
		Quantity: 5,
		Notes:    "compra inicial",
	})
	require.NoError(t, err)
	m.PullEvents()

	copia := entity.ReconstituteInventoryMovement(
		m.ID, m.BikeID, m.Type, m.Reason, m.Quantity, m.Date, m.Notes, m.CreatedAt,
	)
	assert.Equal(t, m, copia)
	assert.Empty(t, copia.PendingEvents())
}
