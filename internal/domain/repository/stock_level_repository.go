package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// LevelRow nivel de stock con nombres de producto y ubicación para reportes.
type LevelRow struct {
	ProductID     int64
	ProductName   string
	SKU           string
	LocationID    int64
	LocationName  string
	Quantity      int64
	LastCountedAt *time.Time
	UpdatedAt     time.Time
}

// ReorderRow fila del reporte de reposición (productos bajo stock mínimo).
type ReorderRow struct {
	ProductID       int64
	ProductName     string
	SKU             string
	Category        string
	TotalQuantity   int64
	MinStockLevel   int64
	QuantityToOrder int64
}

// StockLevelRepository puerto de persistencia de la proyección de saldos.
type StockLevelRepository interface {
	// Get devuelve el nivel para (producto, ubicación) o nil si no existe fila.
	// Nunca crea la fila.
	Get(productID, locationID int64) (*entity.StockLevel, error)
	// GetForUpdate garantiza la fila (creándola en cero si no existe) y la
	// bloquea para escritura. Usar solo dentro de una transacción.
	GetForUpdate(productID, locationID int64) (*entity.StockLevel, error)
	// Upsert fija la cantidad proyectada para (producto, ubicación).
	Upsert(level *entity.StockLevel) error
	// SetCounted sobrescribe la cantidad y estampa last_counted_at (reconteo manual).
	SetCounted(productID, locationID, quantity int64, countedAt time.Time) error
	// Levels lista niveles actuales con nombres, con filtros opcionales.
	Levels(ctx context.Context, productID, locationID *int64) ([]LevelRow, error)
	// BelowMinimum devuelve productos cuyo stock agregado está bajo el mínimo,
	// orden descendente por cantidad a pedir.
	BelowMinimum(ctx context.Context) ([]ReorderRow, error)
}
