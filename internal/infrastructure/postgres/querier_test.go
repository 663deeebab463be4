package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}),
		"una violación de FK no es un duplicado")
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))

	// Los repos envuelven con %w; la detección debe atravesar el wrapping.
	envuelto := fmt.Errorf("save customer: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(envuelto))
}
