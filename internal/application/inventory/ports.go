package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el append al libro y la
// actualización de la proyección persistan juntos o no persistan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.StockLevelRepository,
	) error) error
}
