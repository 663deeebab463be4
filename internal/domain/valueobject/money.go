package valueobject

import "math"

// Money representa un monto en centavos (unidad mínima de la moneda).
// Toda la aritmética es entera; nunca se manejan montos en punto flotante.
type Money struct {
	cents int64
}

// NewMoney construye un monto desde centavos.
func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// Cents devuelve el monto en centavos.
func (m Money) Cents() int64 { return m.cents }

// Add suma dos montos.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulInt multiplica el monto por un entero (ej. días de alquiler).
func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// Percent devuelve el porcentaje indicado del monto, redondeado al centavo
// más cercano. La tasa puede ser fraccionaria (ej. 5.5), el resultado nunca.
func (m Money) Percent(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate / 100))}
}

// IsPositive indica si el monto es estrictamente mayor que cero.
func (m Money) IsPositive() bool { return m.cents > 0 }
