package valueobject

import (
	"time"

	"github.com/tu-usuario/bicirent-pro/internal/domain"
)

// DateRange es un intervalo de fechas con orden estricto (End > Start).
// Inmutable: cualquier modificación produce una instancia nueva.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange valida que end sea estrictamente posterior a start.
// Fechas iguales o invertidas se rechazan en construcción.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, domain.NewValidationError("period", "requiere fecha de inicio y fin")
	}
	if !end.After(start) {
		return DateRange{}, domain.NewValidationError("period", "la fecha de fin debe ser posterior a la de inicio")
	}
	return DateRange{start: start, end: end}, nil
}

// Start devuelve la fecha de inicio.
func (r DateRange) Start() time.Time { return r.start }

// End devuelve la fecha de fin.
func (r DateRange) End() time.Time { return r.end }

// DurationInDays devuelve la duración en días completos, redondeando hacia
// arriba (un alquiler de 36 horas cuenta como 2 días).
func (r DateRange) DurationInDays() int64 {
	d := r.end.Sub(r.start)
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// WithEnd devuelve un intervalo nuevo con la misma fecha de inicio y el fin indicado.
func (r DateRange) WithEnd(end time.Time) (DateRange, error) {
	return NewDateRange(r.start, end)
}

// ReconstituteDateRange rehidrata el intervalo desde almacenamiento sin validar.
func ReconstituteDateRange(start, end time.Time) DateRange {
	return DateRange{start: start, end: end}
}
