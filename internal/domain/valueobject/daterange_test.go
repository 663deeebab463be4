package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/valueobject"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_OrdenEstricto(t *testing.T) {
	// fin == inicio
	_, err := valueobject.NewDateRange(date(2026, 3, 1), date(2026, 3, 1))
	assert.ErrorIs(t, err, domain.ErrValidation, "fechas iguales deben rechazarse")

	// fin < inicio
	_, err = valueobject.NewDateRange(date(2026, 3, 10), date(2026, 3, 1))
	assert.ErrorIs(t, err, domain.ErrValidation, "fin anterior al inicio debe rechazarse")

	// fecha cero
	_, err = valueobject.NewDateRange(time.Time{}, date(2026, 3, 1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDateRange_DurationInDays(t *testing.T) {
	// 10 días exactos
	r, err := valueobject.NewDateRange(date(2026, 3, 1), date(2026, 3, 11))
	require.NoError(t, err)
	assert.Equal(t, int64(10), r.DurationInDays())

	// 36 horas cuentan como 2 días (redondeo hacia arriba)
	r, err = valueobject.NewDateRange(
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.DurationInDays(), "36 horas deben facturar 2 días")

	// una hora cuenta como 1 día
	r, err = valueobject.NewDateRange(
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.DurationInDays())
}

func TestDateRange_WithEndNoMutaElOriginal(t *testing.T) {
	original, err := valueobject.NewDateRange(date(2026, 3, 1), date(2026, 3, 5))
	require.NoError(t, err)

	extended, err := original.WithEnd(date(2026, 3, 20))
	require.NoError(t, err)

	assert.Equal(t, date(2026, 3, 5), original.End(), "el intervalo original no debe cambiar")
	assert.Equal(t, date(2026, 3, 20), extended.End())
	assert.Equal(t, original.Start(), extended.Start())
}

func TestDateRange_WithEndInvalido(t *testing.T) {
	r, err := valueobject.NewDateRange(date(2026, 3, 10), date(2026, 3, 15))
	require.NoError(t, err)

	_, err = r.WithEnd(date(2026, 3, 10))
	assert.ErrorIs(t, err, domain.ErrValidation, "WithEnd con fin <= inicio debe rechazarse")
}
