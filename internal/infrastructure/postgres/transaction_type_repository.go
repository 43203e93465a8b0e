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

var _ repository.TransactionTypeRepository = (*TransactionTypeRepo)(nil)

// TransactionTypeRepo lectura del registro estático de tipos de transacción.
type TransactionTypeRepo struct {
	q Querier
}

func NewTransactionTypeRepository(q Querier) *TransactionTypeRepo {
	return &TransactionTypeRepo{q: q}
}

// EffectOf resuelve el efecto (-1, 0, +1) del tipo. Un id desconocido es
// domain.ErrInvalidTransactionType: se rechaza antes de tocar el libro.
func (r *TransactionTypeRepo) EffectOf(ctx context.Context, typeID int64) (int, error) {
	var effect int
	err := r.q.QueryRow(ctx,
		`SELECT affects_inventory FROM transaction_types WHERE transaction_type_id = $1`,
		typeID,
	).Scan(&effect)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInvalidTransactionType
		}
		return 0, fmt.Errorf("effect of transaction type: %w", err)
	}
	return effect, nil
}

// List devuelve el registro completo ordenado por id.
func (r *TransactionTypeRepo) List(ctx context.Context) ([]entity.TransactionType, error) {
	rows, err := r.q.Query(ctx,
		`SELECT transaction_type_id, name, affects_inventory FROM transaction_types ORDER BY transaction_type_id`)
	if err != nil {
		return nil, fmt.Errorf("list transaction types: %w", err)
	}
	defer rows.Close()
	var list []entity.TransactionType
	for rows.Next() {
		var t entity.TransactionType
		if err := rows.Scan(&t.ID, &t.Name, &t.AffectsInventory); err != nil {
			return nil, fmt.Errorf("scan transaction type: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
