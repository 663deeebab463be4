package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	appinventory "github.com/tu-usuario/bicirent-pro/internal/application/inventory"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	movements []*entity.InventoryMovement
}

func (f *fakeInventoryRepo) SaveMovement(_ context.Context, m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeInventoryRepo) FindMovementsByBikeID(_ context.Context, bikeID string) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range f.movements {
		if m.BikeID == bikeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) FindMovementByID(_ context.Context, id string) (*entity.InventoryMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

type fakeBikeRepo struct {
	bikes map[string]*entity.Bike
}

func (f *fakeBikeRepo) Save(_ context.Context, b *entity.Bike) error {
	f.bikes[b.ID] = b
	return nil
}

func (f *fakeBikeRepo) FindByID(_ context.Context, id string) (*entity.Bike, error) {
	return f.bikes[id], nil
}

func (f *fakeBikeRepo) FindAll(_ context.Context, _ repository.BikeFilter) ([]*entity.Bike, error) {
	var out []*entity.Bike
	for _, b := range f.bikes {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBikeRepo) Delete(_ context.Context, id string) error {
	delete(f.bikes, id)
	return nil
}

func newFixture(threshold int) (*appinventory.UseCase, *fakeInventoryRepo, *fakeBikeRepo) {
	inv := &fakeInventoryRepo{}
	bikes := &fakeBikeRepo{bikes: make(map[string]*entity.Bike)}
	return appinventory.NewUseCase(inv, bikes, nil, threshold), inv, bikes
}

func seedBike(t *testing.T, bikes *fakeBikeRepo, name string) *entity.Bike {
	t.Helper()
	b, err := entity.NewBike(entity.NewBikeParams{
		Name: name, Brand: "Trek", Model: "FX 2", Type: "urbana", Size: "M",
		PriceCents: 250000, DailyRateCents: 5000,
	})
	require.NoError(t, err)
	b.PullEvents()
	bikes.bikes[b.ID] = b
	return b
}

func record(t *testing.T, uc *appinventory.UseCase, bikeID, mType, reason string, qty int) *dto.MovementResponse {
	t.Helper()
	out, err := uc.RecordMovement(context.Background(), dto.RecordMovementRequest{
		BikeID: bikeID, Type: mType, Reason: reason, Quantity: qty,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_Persiste(t *testing.T) {
	uc, inv, _ := newFixture(1)

	out := record(t, uc, "bike-1", "IN", "PURCHASE", 5)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "IN", out.Type)
	assert.Equal(t, "PURCHASE", out.Reason)
	assert.Equal(t, 5, out.Quantity)
	assert.Len(t, inv.movements, 1)
}

func TestRecordMovement_ValidacionPropaga(t *testing.T) {
	uc, inv, _ := newFixture(1)

	_, err := uc.RecordMovement(context.Background(), dto.RecordMovementRequest{
		BikeID: "bike-1", Type: "TRANSFER", Reason: "PURCHASE", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.RecordMovement(context.Background(), dto.RecordMovementRequest{
		BikeID: "bike-1", Type: "IN", Reason: "PURCHASE", Quantity: -2,
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "cantidad negativa debe rechazarse")
	assert.Empty(t, inv.movements, "un movimiento inválido no se persiste")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetStock / GetMovements / GetMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStock_DerivaDelHistorial(t *testing.T) {
	uc, _, _ := newFixture(1)
	record(t, uc, "bike-1", "IN", "PURCHASE", 5)
	record(t, uc, "bike-1", "OUT", "SALE", 3)
	record(t, uc, "bike-2", "IN", "PURCHASE", 1)

	stock, err := uc.GetStock(context.Background(), "bike-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stock.CurrentStock, "IN 5 - OUT 3 = 2")
	assert.True(t, stock.AvailableForRental)

	// Sin historial: stock 0, no disponible. No es un error.
	vacio, err := uc.GetStock(context.Background(), "bike-sin-historial")
	require.NoError(t, err)
	assert.Equal(t, 0, vacio.CurrentStock)
	assert.False(t, vacio.AvailableForRental)
}

func TestGetMovements_SoloDeLaBicicleta(t *testing.T) {
	uc, _, _ := newFixture(1)
	record(t, uc, "bike-1", "IN", "PURCHASE", 5)
	record(t, uc, "bike-2", "IN", "PURCHASE", 2)
	record(t, uc, "bike-1", "OUT", "LOSS", 1)

	movs, err := uc.GetMovements(context.Background(), "bike-1")
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, "bike-1", m.BikeID)
	}
}

func TestGetMovement_NoExiste(t *testing.T) {
	uc, _, _ := newFixture(1)
	_, err := uc.GetMovement(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetLowStockAlerts
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStockAlerts_EnriqueceConNombre(t *testing.T) {
	uc, _, bikes := newFixture(1)
	baja := seedBike(t, bikes, "Urbana 26")
	alta := seedBike(t, bikes, "Montaña 29")

	record(t, uc, baja.ID, "IN", "PURCHASE", 1)
	record(t, uc, alta.ID, "IN", "PURCHASE", 5)

	alerts, err := uc.GetLowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1, "solo alerta la bicicleta en o bajo el umbral")
	assert.Equal(t, baja.ID, alerts[0].BikeID)
	assert.Equal(t, "Urbana 26", alerts[0].BikeName)
	assert.Equal(t, 1, alerts[0].CurrentStock)
}

func TestGetLowStockAlerts_SinHistorialAlertaEnCero(t *testing.T) {
	uc, _, bikes := newFixture(0)
	b := seedBike(t, bikes, "Nueva sin stock")

	alerts, err := uc.GetLowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1, "una bicicleta del catálogo sin movimientos tiene stock 0")
	assert.Equal(t, b.ID, alerts[0].BikeID)
	assert.Equal(t, 0, alerts[0].CurrentStock)
}
