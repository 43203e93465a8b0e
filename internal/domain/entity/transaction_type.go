package entity

// IDs de los 8 tipos de transacción sembrados al inicializar el sistema.
// El registro es estático: no existen operaciones de mutación tras el seed.
const (
	TypePurchase    int64 = 1 // compra (+1)
	TypeSale        int64 = 2 // venta (-1)
	TypeAdjustment  int64 = 3 // ajuste documental (0, ver nota)
	TypeTransferIn  int64 = 4 // traslado entrada (+1)
	TypeTransferOut int64 = 5 // traslado salida (-1)
	TypeReturnIn    int64 = 6 // devolución de cliente (+1)
	TypeReturnOut   int64 = 7 // devolución a proveedor (-1)
	TypeWriteOff    int64 = 8 // baja por daño/pérdida (-1)
)

// TransactionType tipo de transacción de inventario con su efecto sobre el stock.
// AffectsInventory es el multiplicador de la proyección: +1 suma, -1 resta, 0 no afecta.
// Adjustment (tipo 3) queda en 0: documenta una corrección; el reajuste físico
// del saldo se hace por la vía de reconteo manual, nunca con cantidad firmada.
type TransactionType struct {
	ID               int64
	Name             string
	AffectsInventory int
}
