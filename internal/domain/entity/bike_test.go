package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

func newTestBike(t *testing.T) *entity.Bike {
	t.Helper()
	b, err := entity.NewBike(entity.NewBikeParams{
		Name:           "Urbana 28",
		Brand:          "Trek",
		Model:          "FX 2",
		Type:           "urbana",
		Size:           "M",
		PriceCents:     250000,
		DailyRateCents: 5000,
	})
	require.NoError(t, err)
	return b
}

func TestNewBike_EstadoInicialYEvento(t *testing.T) {
	b := newTestBike(t)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, entity.BikeStatusAvailable, b.Status, "una bicicleta nueva debe quedar AVAILABLE")

	events := b.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "BikeCreated", events[0].EventName())
	assert.Empty(t, b.PendingEvents(), "PullEvents debe drenar la lista")
}

func TestNewBike_Validaciones(t *testing.T) {
	base := entity.NewBikeParams{
		Name: "X", Brand: "Y", Model: "Z", Type: "mtb", Size: "L",
		PriceCents: 1, DailyRateCents: 1,
	}

	p := base
	p.Name = ""
	_, err := entity.NewBike(p)
	assert.ErrorIs(t, err, domain.ErrValidation)

	p = base
	p.PriceCents = 0
	_, err = entity.NewBike(p)
	assert.ErrorIs(t, err, domain.ErrValidation, "precio 0 debe rechazarse")

	p = base
	p.DailyRateCents = -1
	_, err = entity.NewBike(p)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Tabla exhaustiva: todo par (origen, destino) no permitido debe fallar con
// ErrInvalidTransition y dejar el estado intacto.
func TestBike_TransicionesNoPermitidas(t *testing.T) {
	allowed := map[entity.BikeStatus][]entity.BikeStatus{
		entity.BikeStatusAvailable:   {entity.BikeStatusRented, entity.BikeStatusSold, entity.BikeStatusMaintenance, entity.BikeStatusRetired},
		entity.BikeStatusRented:      {entity.BikeStatusAvailable, entity.BikeStatusMaintenance},
		entity.BikeStatusSold:        {},
		entity.BikeStatusMaintenance: {entity.BikeStatusAvailable, entity.BikeStatusRetired},
		entity.BikeStatusRetired:     {},
	}
	all := []entity.BikeStatus{
		entity.BikeStatusAvailable, entity.BikeStatusRented, entity.BikeStatusSold,
		entity.BikeStatusMaintenance, entity.BikeStatusRetired,
	}
	apply := func(b *entity.Bike, target entity.BikeStatus) error {
		switch target {
		case entity.BikeStatusAvailable:
			return b.MarkAsReturned()
		case entity.BikeStatusRented:
			return b.MarkAsRented()
		case entity.BikeStatusSold:
			return b.MarkAsSold()
		case entity.BikeStatusMaintenance:
			return b.SendToMaintenance()
		default:
			return b.Retire()
		}
	}

	for _, from := range all {
		for _, to := range all {
			permitted := false
			for _, a := range allowed[from] {
				if a == to {
					permitted = true
				}
			}
			b := newTestBike(t)
			b.Status = from
			b.PullEvents()

			err := apply(b, to)
			if permitted {
				require.NoError(t, err, "transición %s -> %s debe permitirse", from, to)
				assert.Equal(t, to, b.Status)
			} else {
				require.ErrorIs(t, err, domain.ErrInvalidTransition,
					"transición %s -> %s debe rechazarse", from, to)
				assert.Equal(t, from, b.Status, "el estado no debe cambiar tras un rechazo")
				assert.Empty(t, b.PendingEvents(), "un rechazo no debe emitir eventos")
			}
		}
	}
}

func TestBike_MarkAsReturnedDesdeMantenimiento(t *testing.T) {
	b := newTestBike(t)
	require.NoError(t, b.SendToMaintenance())
	require.NoError(t, b.MarkAsReturned(),
		"una bicicleta en mantenimiento puede volver a AVAILABLE")
	assert.Equal(t, entity.BikeStatusAvailable, b.Status)
}

func TestBike_UpdateParcial(t *testing.T) {
	b := newTestBike(t)
	newRate := int64(7500)
	require.NoError(t, b.Update(entity.UpdateBikeParams{DailyRateCents: &newRate}))

	assert.Equal(t, int64(7500), b.DailyRateCents)
	assert.Equal(t, "Trek", b.Brand, "los campos no suministrados no deben cambiar")

	empty := ""
	err := b.Update(entity.UpdateBikeParams{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation, "nombre vacío explícito debe rechazarse")
}

func TestReconstituteBike_SinEventos(t *testing.T) {
	b := newTestBike(t)
	b.PullEvents()

	copia := entity.ReconstituteBike(
		b.ID, b.Name, b.Brand, b.Model, b.Type, b.Size,
		b.PriceCents, b.DailyRateCents, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	assert.Equal(t, b, copia, "la rehidratación debe reproducir el agregado campo a campo")
	assert.Empty(t, copia.PendingEvents(), "rehidratar no debe emitir eventos")
}
