package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx). Persiste cabecera en sales e ítems en sale_items.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Save inserta o actualiza la cabecera y reescribe los ítems.
func (r *SaleRepo) Save(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, status, total_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status, total_cents = EXCLUDED.total_cents,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CustomerID, string(sale.Status), sale.TotalCents, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save sale: %w", err)
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("clear sale items: %w", err)
	}
	for i, item := range sale.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO sale_items (sale_id, position, bike_id, price_cents) VALUES ($1, $2, $3, $4)`,
			sale.ID, i, item.BikeID, item.PriceCents,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// FindByID obtiene una venta completa por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) FindByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, customer_id, status, total_cents, created_at, updated_at
		FROM sales WHERE id = $1`
	var (
		saleID, customerID, status string
		totalCents                 int64
		createdAt, updatedAt       time.Time
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&saleID, &customerID, &status, &totalCents, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	items, err := r.findItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return entity.ReconstituteSale(saleID, customerID, items, entity.SaleStatus(status), totalCents, createdAt, updatedAt), nil
}

// FindAll lista ventas aplicando los filtros no vacíos, con sus ítems.
func (r *SaleRepo) FindAll(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `
		SELECT id, customer_id, status, total_cents, created_at, updated_at
		FROM sales WHERE 1=1`
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
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var (
			saleID, customerID, status string
			totalCents                 int64
			createdAt, updatedAt       time.Time
		)
		if err := rows.Scan(&saleID, &customerID, &status, &totalCents, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, entity.ReconstituteSale(saleID, customerID, nil, entity.SaleStatus(status), totalCents, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, sale := range list {
		items, err := r.findItems(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}
	return list, nil
}

func (r *SaleRepo) findItems(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT bike_id, price_cents FROM sale_items WHERE sale_id = $1 ORDER BY position`,
		saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.BikeID, &it.PriceCents); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
