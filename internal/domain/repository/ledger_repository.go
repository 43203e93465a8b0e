package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// HistoryFilter filtros opcionales para consultar el historial del libro.
// Limit trunca el resultado (0 = default del caso de uso).
type HistoryFilter struct {
	ProductID  *int64
	LocationID *int64
	From       *time.Time
	To         *time.Time
	Limit      int
}

// LedgerHistoryRow asiento del libro enriquecido con nombres legibles para reportes.
type LedgerHistoryRow struct {
	entity.LedgerEntry
	ProductName     string
	SKU             string
	LocationName    string
	TransactionType string
}

// LedgerRepository puerto de persistencia del libro de transacciones.
// Solo append y lecturas: el libro no tiene update ni delete por diseño.
type LedgerRepository interface {
	// Append inserta el asiento y asigna entry.ID con el identificador generado.
	Append(entry *entity.LedgerEntry) error
	GetByID(id int64) (*entity.LedgerEntry, error)
	// History devuelve asientos con joins de nombres, orden descendente por fecha.
	History(ctx context.Context, filter HistoryFilter) ([]LedgerHistoryRow, error)
}
