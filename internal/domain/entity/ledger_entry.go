package entity

import "time"

// LedgerEntry asiento inmutable del libro de transacciones de inventario.
// El ID lo asigna la BD (BIGSERIAL, monótono creciente). Quantity es siempre
// positiva: la dirección del cambio la determina únicamente el efecto del tipo.
// Una vez insertado, un asiento nunca se modifica ni se borra; las correcciones
// son nuevos asientos compensatorios.
type LedgerEntry struct {
	ID                int64
	ProductID         int64
	LocationID        int64
	TransactionTypeID int64
	Quantity          int64
	TransactionDate   time.Time
	ReferenceNumber   *string
	Notes             *string
	CreatedBy         *string
}
