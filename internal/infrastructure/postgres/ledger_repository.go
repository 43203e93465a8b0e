package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de transacciones sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el libro es append-only.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta el asiento y asigna entry.ID (BIGSERIAL, monótono creciente).
// Un product_id o location_id desconocido dispara la FK y se traduce a
// domain.ErrReferential.
func (r *LedgerRepo) Append(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO inventory_transactions (product_id, location_id, transaction_type_id, quantity, transaction_date, reference_number, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING transaction_id`
	err := r.q.QueryRow(context.Background(), query,
		entry.ProductID, entry.LocationID, entry.TransactionTypeID, entry.Quantity,
		entry.TransactionDate, entry.ReferenceNumber, entry.Notes, entry.CreatedBy,
	).Scan(&entry.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferential
		}
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por id; nil si no existe.
func (r *LedgerRepo) GetByID(id int64) (*entity.LedgerEntry, error) {
	query := `
		SELECT transaction_id, product_id, location_id, transaction_type_id, quantity, transaction_date, reference_number, notes, created_by
		FROM inventory_transactions WHERE transaction_id = $1`
	var e entity.LedgerEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ProductID, &e.LocationID, &e.TransactionTypeID, &e.Quantity,
		&e.TransactionDate, &e.ReferenceNumber, &e.Notes, &e.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return &e, nil
}

// History lista asientos con joins de nombres, filtros opcionales y orden
// descendente por fecha. Los predicados se arman con argumentos posicionales,
// nunca concatenando valores.
func (r *LedgerRepo) History(ctx context.Context, filter repository.HistoryFilter) ([]repository.LedgerHistoryRow, error) {
	query := `
		SELECT t.transaction_id, t.product_id, t.location_id, t.transaction_type_id, t.quantity,
		       t.transaction_date, t.reference_number, t.notes, t.created_by,
		       p.name, p.sku, l.name, tt.name
		FROM inventory_transactions t
		JOIN products p ON p.product_id = t.product_id
		JOIN locations l ON l.location_id = t.location_id
		JOIN transaction_types tt ON tt.transaction_type_id = t.transaction_type_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND t.product_id = $%d", pos)
		args = append(args, *filter.ProductID)
		pos++
	}
	if filter.LocationID != nil {
		query += fmt.Sprintf(" AND t.location_id = $%d", pos)
		args = append(args, *filter.LocationID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND t.transaction_date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND t.transaction_date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY t.transaction_date DESC, t.transaction_id DESC LIMIT $%d", pos)
	args = append(args, filter.Limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger history: %w", err)
	}
	defer rows.Close()
	var list []repository.LedgerHistoryRow
	for rows.Next() {
		var row repository.LedgerHistoryRow
		if err := rows.Scan(
			&row.ID, &row.ProductID, &row.LocationID, &row.TransactionTypeID, &row.Quantity,
			&row.TransactionDate, &row.ReferenceNumber, &row.Notes, &row.CreatedBy,
			&row.ProductName, &row.SKU, &row.LocationName, &row.TransactionType,
		); err != nil {
			return nil, fmt.Errorf("scan ledger history row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
