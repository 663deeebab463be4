package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/valueobject"
)

func testPeriod(t *testing.T, days int) valueobject.DateRange {
	t.Helper()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	p, err := valueobject.NewDateRange(start, start.AddDate(0, 0, days))
	require.NoError(t, err)
	return p
}

func newTestRental(t *testing.T) *entity.Rental {
	t.Helper()
	r, err := entity.NewRental("cliente-1", []entity.RentalItem{
		{BikeID: "bike-1", DailyRateCents: 5000},
		{BikeID: "bike-2", DailyRateCents: 3000},
	}, testPeriod(t, 10))
	require.NoError(t, err)
	return r
}

// Invariante del total: suma de tarifas diarias x días del período.
// (5000 + 3000) x 10 = 80000.
func TestNewRental_TotalDerivado(t *testing.T) {
	r := newTestRental(t)

	assert.Equal(t, int64(80000), r.TotalCents)
	assert.Equal(t, entity.RentalStatusReserved, r.Status, "un alquiler nuevo queda RESERVED")

	events := r.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "RentalCreated", events[0].EventName())
}

func TestNewRental_Validaciones(t *testing.T) {
	period := testPeriod(t, 5)

	_, err := entity.NewRental("", []entity.RentalItem{{BikeID: "b", DailyRateCents: 100}}, period)
	assert.ErrorIs(t, err, domain.ErrValidation, "customerId vacío debe rechazarse")

	_, err = entity.NewRental("c", nil, period)
	assert.ErrorIs(t, err, domain.ErrValidation, "sin ítems debe rechazarse")

	_, err = entity.NewRental("c", []entity.RentalItem{{BikeID: "b", DailyRateCents: 0}}, period)
	assert.ErrorIs(t, err, domain.ErrValidation, "tarifa 0 debe rechazarse")
}

func TestRental_CicloDeVida(t *testing.T) {
	r := newTestRental(t)
	r.PullEvents()

	require.NoError(t, r.Start())
	assert.Equal(t, entity.RentalStatusActive, r.Status)

	require.NoError(t, r.Return())
	assert.Equal(t, entity.RentalStatusReturned, r.Status)

	// RETURNED es terminal
	assert.ErrorIs(t, r.Start(), domain.ErrInvalidTransition)
	assert.ErrorIs(t, r.Cancel(), domain.ErrInvalidTransition)
}

func TestRental_CancelarSoloReservado(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.Cancel())
	assert.Equal(t, entity.RentalStatusCancelled, r.Status)

	// Un alquiler activo no se puede cancelar, solo devolver.
	r2 := newTestRental(t)
	require.NoError(t, r2.Start())
	assert.ErrorIs(t, r2.Cancel(), domain.ErrInvalidTransition,
		"cancelar un alquiler activo debe rechazarse")
}

func TestRental_ExtendRecalculaTotal(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.Start())
	r.PullEvents()

	// De 10 a 15 días: (5000 + 3000) x 15 = 120000.
	newEnd := r.Period.End().AddDate(0, 0, 5)
	require.NoError(t, r.Extend(newEnd))

	assert.Equal(t, newEnd, r.Period.End())
	assert.Equal(t, int64(120000), r.TotalCents, "el total debe recalcularse con el período nuevo")

	events := r.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "RentalExtended", events[0].EventName())
}

func TestRental_ExtendInvalido(t *testing.T) {
	// Solo ACTIVE se puede extender.
	r := newTestRental(t)
	err := r.Extend(r.Period.End().AddDate(0, 0, 5))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"extender un alquiler reservado debe rechazarse")

	// La fecha nueva debe ser estrictamente posterior al fin actual.
	r2 := newTestRental(t)
	require.NoError(t, r2.Start())
	total := r2.TotalCents
	err = r2.Extend(r2.Period.End())
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, total, r2.TotalCents, "un Extend rechazado no debe tocar el total")
}

// Los ítems son una lista ordenada: la rehidratación conserva el orden de
// creación aunque no coincida con el orden alfabético de los IDs.
func TestReconstituteRental_ConservaOrdenDeItems(t *testing.T) {
	items := []entity.RentalItem{
		{BikeID: "bike-z", DailyRateCents: 5000},
		{BikeID: "bike-a", DailyRateCents: 3000},
	}
	r, err := entity.NewRental("cliente-1", items, testPeriod(t, 10))
	require.NoError(t, err)
	r.PullEvents()

	copia := entity.ReconstituteRental(
		r.ID, r.CustomerID, r.Items, r.Period, r.Status, r.TotalCents, r.CreatedAt, r.UpdatedAt,
	)
	assert.Equal(t, items, copia.Items)
}

func TestReconstituteRental_SinEventos(t *testing.T) {
	r := newTestRental(t)
	r.PullEvents()

	copia := entity.ReconstituteRental(
		r.ID, r.CustomerID, r.Items, r.Period, r.Status, r.TotalCents, r.CreatedAt, r.UpdatedAt,
	)
	assert.Equal(t, r, copia)
	assert.Empty(t, copia.PendingEvents())
}
