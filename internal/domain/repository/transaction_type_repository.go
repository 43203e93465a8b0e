package repository

import (
	"context"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// TransactionTypeRepository puerto de lectura del registro de tipos de transacción.
// La tabla es estática (sembrada una vez); no hay operaciones de mutación.
type TransactionTypeRepository interface {
	// EffectOf devuelve el efecto (-1, 0, +1) del tipo, o
	// domain.ErrInvalidTransactionType si el id es desconocido.
	EffectOf(ctx context.Context, typeID int64) (int, error)
	List(ctx context.Context) ([]entity.TransactionType, error)
}
