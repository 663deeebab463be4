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

var _ repository.BikeRepository = (*BikeRepo)(nil)

// BikeRepo implementación del puerto BikeRepository sobre PostgreSQL (usable con pool o tx).
type BikeRepo struct {
	q Querier
}

// NewBikeRepository construye el adaptador de persistencia para bicicletas. Pasar pool o tx (Querier).
func NewBikeRepository(q Querier) *BikeRepo {
	return &BikeRepo{q: q}
}

// Save inserta o actualiza la bicicleta (upsert por ID).
func (r *BikeRepo) Save(ctx context.Context, bike *entity.Bike) error {
	query := `
		INSERT INTO bikes (id, name, brand, model, type, size, price_cents, daily_rate_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, brand = EXCLUDED.brand, model = EXCLUDED.model,
			type = EXCLUDED.type, size = EXCLUDED.size,
			price_cents = EXCLUDED.price_cents, daily_rate_cents = EXCLUDED.daily_rate_cents,
			status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		bike.ID, bike.Name, bike.Brand, bike.Model, bike.Type, bike.Size,
		bike.PriceCents, bike.DailyRateCents, string(bike.Status), bike.CreatedAt, bike.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save bike: %w", err)
	}
	return nil
}

// FindByID obtiene una bicicleta por ID. Devuelve (nil, nil) si no existe.
func (r *BikeRepo) FindByID(ctx context.Context, id string) (*entity.Bike, error) {
	query := `
		SELECT id, name, brand, model, type, size, price_cents, daily_rate_cents, status, created_at, updated_at
		FROM bikes WHERE id = $1`
	bike, err := scanBike(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bike: %w", err)
	}
	return bike, nil
}

// FindAll lista bicicletas aplicando los filtros no vacíos.
func (r *BikeRepo) FindAll(ctx context.Context, filter repository.BikeFilter) ([]*entity.Bike, error) {
	query := `
		SELECT id, name, brand, model, type, size, price_cents, daily_rate_cents, status, created_at, updated_at
		FROM bikes WHERE 1=1`
	args := []any{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Brand != "" {
		args = append(args, filter.Brand)
		query += fmt.Sprintf(" AND brand = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bikes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bike
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bike: %w", err)
		}
		list = append(list, bike)
	}
	return list, rows.Err()
}

// Delete elimina una bicicleta por ID.
func (r *BikeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM bikes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bike: %w", err)
	}
	return nil
}

func scanBike(row pgx.Row) (*entity.Bike, error) {
	var (
		id, name, brand, model, bikeType, size, status string
		priceCents, dailyRateCents                     int64
		createdAt, updatedAt                           time.Time
	)
	if err := row.Scan(&id, &name, &brand, &model, &bikeType, &size, &priceCents, &dailyRateCents, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return entity.ReconstituteBike(id, name, brand, model, bikeType, size, priceCents, dailyRateCents, entity.BikeStatus(status), createdAt, updatedAt), nil
}
