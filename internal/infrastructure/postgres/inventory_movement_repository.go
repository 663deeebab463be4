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

var _ repository.InventoryRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del puerto InventoryRepository sobre
// PostgreSQL. Solo inserta y lee: el libro es append-only y no hay UPDATE ni
// DELETE sobre inventory_movements.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// SaveMovement inserta una entrada del libro. Nunca actualiza.
func (r *InventoryMovementRepo) SaveMovement(ctx context.Context, m *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, bike_id, type, reason, quantity, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.BikeID, string(m.Type), string(m.Reason), m.Quantity, m.Date, m.Notes, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

// FindMovementsByBikeID devuelve el historial de una bicicleta en orden cronológico.
func (r *InventoryMovementRepo) FindMovementsByBikeID(ctx context.Context, bikeID string) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, bike_id, type, reason, quantity, date, notes, created_at
		FROM inventory_movements WHERE bike_id = $1 ORDER BY date ASC, created_at ASC`
	rows, err := r.q.Query(ctx, query, bikeID)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// FindMovementByID obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (r *InventoryMovementRepo) FindMovementByID(ctx context.Context, id string) (*entity.InventoryMovement, error) {
	query := `
		SELECT id, bike_id, type, reason, quantity, date, notes, created_at
		FROM inventory_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory movement: %w", err)
	}
	return m, nil
}

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var (
		id, bikeID, mType, reason string
		quantity                  int
		notes                     *string
		date, createdAt           time.Time
	)
	if err := row.Scan(&id, &bikeID, &mType, &reason, &quantity, &date, &notes, &createdAt); err != nil {
		return nil, err
	}
	n := ""
	if notes != nil {
		n = *notes
	}
	return entity.ReconstituteInventoryMovement(id, bikeID, entity.MovementType(mType), entity.MovementReason(reason), quantity, date, n, createdAt), nil
}
