package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/valueobject"
)

// Customer representa un cliente del taller (alquileres y ventas lo
// referencian por ID).
type Customer struct {
	ID        string
	Name      string
	Email     valueobject.Email
	Phone     valueobject.PhoneNumber
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer valida nombre, email y teléfono y crea el cliente.
func NewCustomer(name, email, phone string) (*Customer, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	phoneVO, err := valueobject.NewPhoneNumber(phone)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     emailVO,
		Phone:     phoneVO,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ReconstituteCustomer rehidrata un cliente desde almacenamiento sin validar.
func ReconstituteCustomer(id, name, email, phone string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		ID:        id,
		Name:      name,
		Email:     valueobject.ReconstituteEmail(email),
		Phone:     valueobject.ReconstitutePhoneNumber(phone),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
