package valueobject

import (
	"regexp"
	"strings"

	"github.com/tu-usuario/bicirent-pro/internal/domain"
)

// Patrones de validación para los escalares de contacto.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}$`)
)

// Email es una dirección de correo validada.
type Email struct {
	value string
}

// NewEmail normaliza (trim + minúsculas) y valida la dirección.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, domain.NewValidationError("email", "es obligatorio")
	}
	if !emailPattern.MatchString(v) {
		return Email{}, domain.NewValidationError("email", "tiene formato inválido")
	}
	return Email{value: v}, nil
}

// String devuelve la dirección normalizada.
func (e Email) String() string { return e.value }

// ReconstituteEmail rehidrata el valor desde almacenamiento sin validar.
func ReconstituteEmail(v string) Email { return Email{value: v} }

// PhoneNumber es un número telefónico validado (dígitos, espacios y guiones,
// prefijo internacional opcional).
type PhoneNumber struct {
	value string
}

// NewPhoneNumber valida el número; vacío se rechaza.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return PhoneNumber{}, domain.NewValidationError("phone", "es obligatorio")
	}
	if !phonePattern.MatchString(v) {
		return PhoneNumber{}, domain.NewValidationError("phone", "tiene formato inválido")
	}
	return PhoneNumber{value: v}, nil
}

// String devuelve el número validado.
func (p PhoneNumber) String() string { return p.value }

// ReconstitutePhoneNumber rehidrata el valor desde almacenamiento sin validar.
func ReconstitutePhoneNumber(v string) PhoneNumber { return PhoneNumber{value: v} }
