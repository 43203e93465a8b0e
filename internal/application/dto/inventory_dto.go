package dto

import "time"

// RecordTransactionRequest body para POST /api/inventory/transactions.
// Quantity siempre positiva; la dirección la fija el tipo de transacción.
type RecordTransactionRequest struct {
	ProductID         int64   `json:"product_id"`
	LocationID        int64   `json:"location_id"`
	TransactionTypeID int64   `json:"transaction_type_id"`
	Quantity          int64   `json:"quantity"`
	ReferenceNumber   *string `json:"reference_number,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	CreatedBy         *string `json:"created_by,omitempty"`
}

// RecordTransactionResponse respuesta con el id asignado al asiento.
type RecordTransactionResponse struct {
	TransactionID int64 `json:"transaction_id"`
}

// TransferRequest body para POST /api/inventory/transfers.
// Registra Transfer Out en origen y Transfer In en destino como unidad atómica.
type TransferRequest struct {
	ProductID       int64   `json:"product_id"`
	FromLocationID  int64   `json:"from_location_id"`
	ToLocationID    int64   `json:"to_location_id"`
	Quantity        int64   `json:"quantity"`
	ReferenceNumber *string `json:"reference_number,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedBy       *string `json:"created_by,omitempty"`
}

// TransferResponse ids de los dos asientos y la referencia que los enlaza.
type TransferResponse struct {
	OutTransactionID int64  `json:"out_transaction_id"`
	InTransactionID  int64  `json:"in_transaction_id"`
	ReferenceNumber  string `json:"reference_number"`
}

// RecountRequest body para PUT /api/inventory/levels/:product_id/:location_id.
// Reconteo manual: sobrescribe el saldo proyectado sin pasar por el libro.
type RecountRequest struct {
	Quantity  int64      `json:"quantity"`
	CountedAt *time.Time `json:"counted_at,omitempty"`
}

// QuantityResponse saldo actual de un producto en una ubicación.
type QuantityResponse struct {
	ProductID  int64 `json:"product_id"`
	LocationID int64 `json:"location_id"`
	Quantity   int64 `json:"quantity"`
}

// LevelDTO fila del reporte de niveles actuales.
type LevelDTO struct {
	ProductID     int64      `json:"product_id"`
	ProductName   string     `json:"product_name"`
	SKU           string     `json:"sku"`
	LocationID    int64      `json:"location_id"`
	LocationName  string     `json:"location_name"`
	Quantity      int64      `json:"quantity"`
	LastCountedAt *time.Time `json:"last_counted_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TransactionHistoryDTO fila del historial de transacciones (más reciente primero).
type TransactionHistoryDTO struct {
	TransactionID   int64     `json:"transaction_id"`
	ProductID       int64     `json:"product_id"`
	ProductName     string    `json:"product_name"`
	SKU             string    `json:"sku"`
	LocationID      int64     `json:"location_id"`
	LocationName    string    `json:"location_name"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int64     `json:"quantity"`
	TransactionDate time.Time `json:"transaction_date"`
	ReferenceNumber *string   `json:"reference_number,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedBy       *string   `json:"created_by,omitempty"`
}

// ReorderItemDTO fila del reporte de reposición (stock bajo mínimo).
type ReorderItemDTO struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	SKU             string `json:"sku"`
	Category        string `json:"category"`
	TotalQuantity   int64  `json:"total_quantity"`
	MinStockLevel   int64  `json:"min_stock_level"`
	QuantityToOrder int64  `json:"quantity_to_order"`
}

// TransactionTypeDTO tipo de transacción del registro estático.
type TransactionTypeDTO struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	AffectsInventory int    `json:"affects_inventory"`
}
