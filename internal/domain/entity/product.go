package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto o SKU del catálogo (datos maestros).
// MinStockLevel y MaxStockLevel alimentan el reporte de reposición;
// el saldo por ubicación vive en StockLevel, nunca aquí.
type Product struct {
	ID            int64
	SKU           string // código único
	Name          string
	Description   *string
	CategoryID    *int64
	SupplierID    *int64
	UnitPrice     decimal.Decimal
	MinStockLevel int64
	MaxStockLevel *int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
