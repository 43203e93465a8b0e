package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de la proyección de saldos sobre PostgreSQL
// (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene el nivel para (producto, ubicación); nil si no existe fila.
func (r *StockLevelRepo) Get(productID, locationID int64) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, last_counted_at, updated_at
		FROM inventory WHERE product_id = $1 AND location_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.LastCountedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// GetForUpdate garantiza la fila y la bloquea (SELECT ... FOR UPDATE).
// El INSERT ... ON CONFLICT DO NOTHING crea la fila en cero en el primer
// movimiento del par, de modo que el bloqueo serializa también a dos
// escritores concurrentes que estrenan el par. Usar solo dentro de una tx.
func (r *StockLevelRepo) GetForUpdate(productID, locationID int64) (*entity.StockLevel, error) {
	ensure := `
		INSERT INTO inventory (product_id, location_id, quantity)
		VALUES ($1, $2, 0)
		ON CONFLICT (product_id, location_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), ensure, productID, locationID); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrReferential
		}
		return nil, fmt.Errorf("ensure stock level row: %w", err)
	}

	query := `
		SELECT product_id, location_id, quantity, last_counted_at, updated_at
		FROM inventory WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.LastCountedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

// Upsert fija la cantidad proyectada para (producto, ubicación).
// No toca last_counted_at: eso es exclusivo del reconteo manual.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO inventory (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.ProductID, level.LocationID, level.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferential
		}
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// SetCounted sobrescribe la cantidad y estampa last_counted_at (reconteo manual).
func (r *StockLevelRepo) SetCounted(productID, locationID, quantity int64, countedAt time.Time) error {
	query := `
		INSERT INTO inventory (product_id, location_id, quantity, last_counted_at, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_counted_at = EXCLUDED.last_counted_at, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, locationID, quantity, countedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferential
		}
		return fmt.Errorf("set counted stock level: %w", err)
	}
	return nil
}

// Levels lista niveles actuales con nombres, con filtros opcionales por
// producto y/o ubicación, ordenados por producto y ubicación.
func (r *StockLevelRepo) Levels(ctx context.Context, productID, locationID *int64) ([]repository.LevelRow, error) {
	query := `
		SELECT i.product_id, p.name, p.sku, i.location_id, l.name, i.quantity, i.last_counted_at, i.updated_at
		FROM inventory i
		JOIN products p ON p.product_id = i.product_id
		JOIN locations l ON l.location_id = i.location_id
		WHERE 1=1`
	var args []any
	pos := 1
	if productID != nil {
		query += fmt.Sprintf(" AND i.product_id = $%d", pos)
		args = append(args, *productID)
		pos++
	}
	if locationID != nil {
		query += fmt.Sprintf(" AND i.location_id = $%d", pos)
		args = append(args, *locationID)
		pos++
	}
	query += " ORDER BY p.name, l.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []repository.LevelRow
	for rows.Next() {
		var row repository.LevelRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.SKU, &row.LocationID, &row.LocationName,
			&row.Quantity, &row.LastCountedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock level row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// BelowMinimum devuelve productos activos cuyo stock agregado está bajo su
// mínimo configurado. La cantidad a pedir lleva hasta el máximo si está
// definido, o hasta el mínimo si no; orden descendente por cantidad a pedir.
func (r *StockLevelRepo) BelowMinimum(ctx context.Context) ([]repository.ReorderRow, error) {
	query := `
		SELECT p.product_id, p.name, p.sku, COALESCE(c.name, '') AS category,
		       COALESCE(SUM(i.quantity), 0) AS total_quantity,
		       p.min_stock_level,
		       COALESCE(p.max_stock_level, p.min_stock_level) - COALESCE(SUM(i.quantity), 0) AS quantity_to_order
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		LEFT JOIN inventory i ON i.product_id = p.product_id
		WHERE p.is_active = TRUE AND p.min_stock_level > 0
		GROUP BY p.product_id, p.name, p.sku, c.name, p.min_stock_level, p.max_stock_level
		HAVING COALESCE(SUM(i.quantity), 0) < p.min_stock_level
		ORDER BY quantity_to_order DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reorder list: %w", err)
	}
	defer rows.Close()
	var list []repository.ReorderRow
	for rows.Next() {
		var row repository.ReorderRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.SKU, &row.Category,
			&row.TotalQuantity, &row.MinStockLevel, &row.QuantityToOrder,
		); err != nil {
			return nil, fmt.Errorf("scan reorder row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
