package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/inventory"
)

func mov(t *testing.T, mType entity.MovementType, reason entity.MovementReason, qty int) *entity.InventoryMovement {
	t.Helper()
	m, err := entity.NewInventoryMovement(entity.NewMovementParams{
		BikeID: "bike-1", Type: mType, Reason: reason, Quantity: qty,
	})
	require.NoError(t, err)
	return m
}

func TestCalculateCurrentStock_Plegado(t *testing.T) {
	movements := []*entity.InventoryMovement{
		mov(t, entity.MovementTypeIN, entity.MovementReasonPurchase, 5),
		mov(t, entity.MovementTypeOUT, entity.MovementReasonSale, 3),
	}
	assert.Equal(t, 2, inventory.CalculateCurrentStock(movements), "IN 5 - OUT 3 = 2")

	// ADJUSTMENT suma
	movements = append(movements, mov(t, entity.MovementTypeADJUSTMENT, entity.MovementReasonAdjustment, 4))
	assert.Equal(t, 6, inventory.CalculateCurrentStock(movements))
}

// La proyección es conmutativa: cualquier orden del historial produce el mismo stock.
func TestCalculateCurrentStock_OrdenIndiferente(t *testing.T) {
	a := mov(t, entity.MovementTypeIN, entity.MovementReasonPurchase, 10)
	b := mov(t, entity.MovementTypeOUT, entity.MovementReasonRentalOut, 4)
	c := mov(t, entity.MovementTypeADJUSTMENT, entity.MovementReasonAdjustment, 1)

	ordenes := [][]*entity.InventoryMovement{
		{a, b, c}, {c, b, a}, {b, a, c}, {b, c, a}, {c, a, b}, {a, c, b},
	}
	for _, orden := range ordenes {
		assert.Equal(t, 7, inventory.CalculateCurrentStock(orden))
	}
}

// El sobregiro es observable: el stock puede quedar negativo.
func TestCalculateCurrentStock_PuedeSerNegativo(t *testing.T) {
	movements := []*entity.InventoryMovement{
		mov(t, entity.MovementTypeIN, entity.MovementReasonPurchase, 1),
		mov(t, entity.MovementTypeOUT, entity.MovementReasonSale, 3),
	}
	assert.Equal(t, -2, inventory.CalculateCurrentStock(movements))
}

func TestIsAvailableForRental(t *testing.T) {
	// Historial vacío: sin stock, no disponible.
	assert.False(t, inventory.IsAvailableForRental(nil))

	conStock := []*entity.InventoryMovement{
		mov(t, entity.MovementTypeIN, entity.MovementReasonPurchase, 1),
	}
	assert.True(t, inventory.IsAvailableForRental(conStock))

	agotado := append(conStock, mov(t, entity.MovementTypeOUT, entity.MovementReasonRentalOut, 1))
	assert.False(t, inventory.IsAvailableForRental(agotado), "stock 0 no está disponible")
}

func TestGetLowStockAlerts(t *testing.T) {
	stock := map[string]int{
		"bike-1": 0,
		"bike-2": 1,
		"bike-3": 5,
		"bike-4": -2,
	}

	alerts := inventory.GetLowStockAlerts(stock, 1)
	require.Len(t, alerts, 3, "con umbral 1 alertan las bicicletas con stock <= 1")

	porBici := make(map[string]int, len(alerts))
	for _, a := range alerts {
		porBici[a.BikeID] = a.CurrentStock
	}
	assert.Equal(t, map[string]int{"bike-1": 0, "bike-2": 1, "bike-4": -2}, porBici)

	assert.Empty(t, inventory.GetLowStockAlerts(stock, -10), "umbral por debajo de todo no alerta nada")
}
