package entity

import "time"

// StockLevel proyección materializada del saldo actual por (producto, ubicación).
// En reposo, Quantity es igual al fold del libro: Σ quantity * affects_inventory.
// Puede ser negativa (no se impone piso de inventario). LastCountedAt solo lo
// estampa el reconteo manual, nunca el camino transaccional.
type StockLevel struct {
	ProductID     int64
	LocationID    int64
	Quantity      int64
	LastCountedAt *time.Time
	UpdatedAt     time.Time
}
