package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
	"github.com/tu-usuario/bicirent-pro/internal/domain/valueobject"
)

var _ repository.RentalRepository = (*RentalRepo)(nil)

// RentalRepo implementación del puerto RentalRepository sobre PostgreSQL
// (usable con pool o tx). Persiste cabecera en rentals e ítems en rental_items.
type RentalRepo struct {
	q Querier
}

// NewRentalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRentalRepository(q Querier) *RentalRepo {
	return &RentalRepo{q: q}
}

// Save inserta o actualiza la cabecera y reescribe los ítems. Los ítems son
// inmutables tras la creación, así que el delete+insert solo importa en el
// primer Save repetido.
func (r *RentalRepo) Save(ctx context.Context, rental *entity.Rental) error {
	query := `
		INSERT INTO rentals (id, customer_id, start_date, end_date, status, total_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
			status = EXCLUDED.status, total_cents = EXCLUDED.total_cents,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		rental.ID, rental.CustomerID, rental.Period.Start(), rental.Period.End(),
		string(rental.Status), rental.TotalCents, rental.CreatedAt, rental.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save rental: %w", err)
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM rental_items WHERE rental_id = $1`, rental.ID); err != nil {
		return fmt.Errorf("clear rental items: %w", err)
	}
	for i, item := range rental.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO rental_items (rental_id, position, bike_id, daily_rate_cents) VALUES ($1, $2, $3, $4)`,
			rental.ID, i, item.BikeID, item.DailyRateCents,
		)
		if err != nil {
			return fmt.Errorf("insert rental item: %w", err)
		}
	}
	return nil
}

// FindByID obtiene un alquiler completo por ID. Devuelve (nil, nil) si no existe.
func (r *RentalRepo) FindByID(ctx context.Context, id string) (*entity.Rental, error) {
	query := `
		SELECT id, customer_id, start_date, end_date, status, total_cents, created_at, updated_at
		FROM rentals WHERE id = $1`
	var (
		rentalID, customerID, status               string
		startDate, endDate, createdAt, updatedAt   time.Time
		totalCents                                 int64
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rentalID, &customerID, &startDate, &endDate, &status, &totalCents, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rental: %w", err)
	}

	items, err := r.findItems(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return entity.ReconstituteRental(
		rentalID, customerID, items,
		valueobject.ReconstituteDateRange(startDate, endDate),
		entity.RentalStatus(status), totalCents, createdAt, updatedAt,
	), nil
}

// FindAll lista alquileres aplicando los filtros no vacíos, con sus ítems.
func (r *RentalRepo) FindAll(ctx context.Context, filter repository.RentalFilter) ([]*entity.Rental, error) {
	query := `
		SELECT id, customer_id, start_date, end_date, status, total_cents, created_at, updated_at
		FROM rentals WHERE 1=1`
	args := []any{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Rental
	for rows.Next() {
		var (
			rentalID, customerID, status             string
			startDate, endDate, createdAt, updatedAt time.Time
			totalCents                               int64
		)
		if err := rows.Scan(&rentalID, &customerID, &startDate, &endDate, &status, &totalCents, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		list = append(list, entity.ReconstituteRental(
			rentalID, customerID, nil,
			valueobject.ReconstituteDateRange(startDate, endDate),
			entity.RentalStatus(status), totalCents, createdAt, updatedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rental := range list {
		items, err := r.findItems(ctx, rental.ID)
		if err != nil {
			return nil, err
		}
		rental.Items = items
	}
	return list, nil
}

func (r *RentalRepo) findItems(ctx context.Context, rentalID string) ([]entity.RentalItem, error) {
	// position conserva el orden de creación: los ítems son una lista ordenada.
	rows, err := r.q.Query(ctx,
		`SELECT bike_id, daily_rate_cents FROM rental_items WHERE rental_id = $1 ORDER BY position`,
		rentalID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rental items: %w", err)
	}
	defer rows.Close()
	var items []entity.RentalItem
	for rows.Next() {
		var it entity.RentalItem
		if err := rows.Scan(&it.BikeID, &it.DailyRateCents); err != nil {
			return nil, fmt.Errorf("scan rental item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
