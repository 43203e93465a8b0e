package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// DefaultHistoryLimit tope de filas del historial cuando el caller no lo indica.
const DefaultHistoryLimit = 100

// ReportUseCase vistas de solo lectura derivadas del libro y la proyección:
// niveles actuales, historial de transacciones y lista de reposición.
type ReportUseCase struct {
	ledgerRepo repository.LedgerRepository
	stockRepo  repository.StockLevelRepository
	typeRepo   repository.TransactionTypeRepository
}

// NewReportUseCase construye el caso de uso de reportes (repos atados al pool).
func NewReportUseCase(
	ledgerRepo repository.LedgerRepository,
	stockRepo repository.StockLevelRepository,
	typeRepo repository.TransactionTypeRepository,
) *ReportUseCase {
	return &ReportUseCase{
		ledgerRepo: ledgerRepo,
		stockRepo:  stockRepo,
		typeRepo:   typeRepo,
	}
}

// HistoryInput filtros opcionales para el historial de transacciones.
type HistoryInput struct {
	ProductID  *int64
	LocationID *int64
	From       *time.Time
	To         *time.Time
	Limit      int
}

// Levels devuelve los niveles actuales con nombres de producto y ubicación,
// filtrados opcionalmente por producto y/o ubicación.
func (uc *ReportUseCase) Levels(ctx context.Context, productID, locationID *int64) ([]dto.LevelDTO, error) {
	rows, err := uc.stockRepo.Levels(ctx, productID, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LevelDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LevelDTO{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			SKU:           r.SKU,
			LocationID:    r.LocationID,
			LocationName:  r.LocationName,
			Quantity:      r.Quantity,
			LastCountedAt: r.LastCountedAt,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return out, nil
}

// History devuelve el historial de transacciones, más reciente primero.
// Limit <= 0 aplica DefaultHistoryLimit.
func (uc *ReportUseCase) History(ctx context.Context, in HistoryInput) ([]dto.TransactionHistoryDTO, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := uc.ledgerRepo.History(ctx, repository.HistoryFilter{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		From:       in.From,
		To:         in.To,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionHistoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TransactionHistoryDTO{
			TransactionID:   r.ID,
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			SKU:             r.SKU,
			LocationID:      r.LocationID,
			LocationName:    r.LocationName,
			TransactionType: r.TransactionType,
			Quantity:        r.Quantity,
			TransactionDate: r.TransactionDate,
			ReferenceNumber: r.ReferenceNumber,
			Notes:           r.Notes,
			CreatedBy:       r.CreatedBy,
		})
	}
	return out, nil
}

// LowStock devuelve los productos cuyo stock agregado (todas las ubicaciones)
// está por debajo de su mínimo configurado, con la cantidad sugerida de pedido,
// orden descendente por cantidad a pedir.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.ReorderItemDTO, error) {
	rows, err := uc.stockRepo.BelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReorderItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReorderItemDTO{
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			SKU:             r.SKU,
			Category:        r.Category,
			TotalQuantity:   r.TotalQuantity,
			MinStockLevel:   r.MinStockLevel,
			QuantityToOrder: r.QuantityToOrder,
		})
	}
	return out, nil
}

// TransactionTypes lista el registro estático de tipos.
func (uc *ReportUseCase) TransactionTypes(ctx context.Context) ([]dto.TransactionTypeDTO, error) {
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionTypeDTO, 0, len(types))
	for _, t := range types {
		out = append(out, dto.TransactionTypeDTO{
			ID:               t.ID,
			Name:             t.Name,
			AffectsInventory: t.AffectsInventory,
		})
	}
	return out, nil
}
