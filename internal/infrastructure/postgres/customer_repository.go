package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL
// (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Save inserta o actualiza el cliente. El email tiene constraint único.
func (r *CustomerRepo) Save(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email.String(), customer.Phone.String(),
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save customer: %w", err)
	}
	return nil
}

// FindByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT id, name, email, phone, created_at, updated_at FROM customers WHERE id = $1`
	var (
		customerID, name, email, phone string
		createdAt, updatedAt           time.Time
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&customerID, &name, &email, &phone, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return entity.ReconstituteCustomer(customerID, name, email, phone, createdAt, updatedAt), nil
}

// FindAll lista clientes paginados por fecha de creación descendente.
func (r *CustomerRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var (
			customerID, name, email, phone string
			createdAt, updatedAt           time.Time
		)
		if err := rows.Scan(&customerID, &name, &email, &phone, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, entity.ReconstituteCustomer(customerID, name, email, phone, createdAt, updatedAt))
	}
	return list, rows.Err()
}
