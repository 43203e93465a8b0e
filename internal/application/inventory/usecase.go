package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// LedgerUseCase es el único camino de escritura que mantiene la proyección de
// saldos consistente con el libro: cada asiento y su delta se confirman como
// unidad atómica (TxRunner con bloqueo de fila y Commit/Rollback).
type LedgerUseCase struct {
	txRunner  TxRunner
	typeRepo  repository.TransactionTypeRepository
	stockRepo repository.StockLevelRepository
}

// NewLedgerUseCase construye el caso de uso. stockRepo va atado al pool
// (lecturas fuera de transacción); las escrituras usan los repos del TxRunner.
func NewLedgerUseCase(
	txRunner TxRunner,
	typeRepo repository.TransactionTypeRepository,
	stockRepo repository.StockLevelRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:  txRunner,
		typeRepo:  typeRepo,
		stockRepo: stockRepo,
	}
}

// TransactionInput entrada para registrar una transacción de inventario.
// Quantity siempre positiva; TransactionDate en cero = ahora.
type TransactionInput struct {
	ProductID         int64
	LocationID        int64
	TransactionTypeID int64
	Quantity          int64
	TransactionDate   time.Time
	ReferenceNumber   *string
	Notes             *string
	CreatedBy         *string
}

// TransferInput entrada para un traslado atómico entre ubicaciones.
type TransferInput struct {
	ProductID       int64
	FromLocationID  int64
	ToLocationID    int64
	Quantity        int64
	ReferenceNumber *string
	Notes           *string
	CreatedBy       *string
}

// TransferResult ids de los dos asientos del traslado y su referencia común.
type TransferResult struct {
	OutTransactionID int64
	InTransactionID  int64
	ReferenceNumber  string
}

// RecordTransaction valida la entrada, resuelve el efecto del tipo en el
// registro (antes de cualquier escritura durable) y confirma asiento +
// proyección en una sola transacción. Devuelve el id asignado al asiento.
// El stock proyectado puede quedar negativo: no se impone piso.
func (uc *LedgerUseCase) RecordTransaction(ctx context.Context, in TransactionInput) (int64, error) {
	if in.Quantity <= 0 {
		return 0, domain.ErrValidation
	}
	if in.ProductID <= 0 || in.LocationID <= 0 {
		return 0, domain.ErrValidation
	}

	// Resolver el efecto antes de escribir: tipo desconocido = rechazo sin estado parcial.
	effect, err := uc.typeRepo.EffectOf(ctx, in.TransactionTypeID)
	if err != nil {
		return 0, err
	}

	date := in.TransactionDate
	if date.IsZero() {
		date = time.Now()
	}

	var txID int64
	err = uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		entry := &entity.LedgerEntry{
			ProductID:         in.ProductID,
			LocationID:        in.LocationID,
			TransactionTypeID: in.TransactionTypeID,
			Quantity:          in.Quantity,
			TransactionDate:   date,
			ReferenceNumber:   in.ReferenceNumber,
			Notes:             in.Notes,
			CreatedBy:         in.CreatedBy,
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return err
		}
		txID = entry.ID

		if effect != 0 {
			if err := applyDelta(stockRepo, in.ProductID, in.LocationID, in.Quantity*int64(effect)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return txID, nil
}

// RecordTransfer registra Transfer Out en origen y Transfer In en destino bajo
// UNA transacción con referencia común: el stock total del producto se conserva
// aunque el proceso muera a mitad de camino.
func (uc *LedgerUseCase) RecordTransfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	if in.Quantity <= 0 || in.ProductID <= 0 {
		return nil, domain.ErrValidation
	}
	if in.FromLocationID <= 0 || in.ToLocationID <= 0 || in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrValidation
	}

	outEffect, err := uc.typeRepo.EffectOf(ctx, entity.TypeTransferOut)
	if err != nil {
		return nil, err
	}
	inEffect, err := uc.typeRepo.EffectOf(ctx, entity.TypeTransferIn)
	if err != nil {
		return nil, err
	}

	ref := uuid.New().String()
	if in.ReferenceNumber != nil && *in.ReferenceNumber != "" {
		ref = *in.ReferenceNumber
	}
	now := time.Now()

	result := &TransferResult{ReferenceNumber: ref}
	err = uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		outEntry := &entity.LedgerEntry{
			ProductID:         in.ProductID,
			LocationID:        in.FromLocationID,
			TransactionTypeID: entity.TypeTransferOut,
			Quantity:          in.Quantity,
			TransactionDate:   now,
			ReferenceNumber:   &ref,
			Notes:             in.Notes,
			CreatedBy:         in.CreatedBy,
		}
		if err := ledgerRepo.Append(outEntry); err != nil {
			return err
		}
		if err := applyDelta(stockRepo, in.ProductID, in.FromLocationID, in.Quantity*int64(outEffect)); err != nil {
			return err
		}

		inEntry := &entity.LedgerEntry{
			ProductID:         in.ProductID,
			LocationID:        in.ToLocationID,
			TransactionTypeID: entity.TypeTransferIn,
			Quantity:          in.Quantity,
			TransactionDate:   now,
			ReferenceNumber:   &ref,
			Notes:             in.Notes,
			CreatedBy:         in.CreatedBy,
		}
		if err := ledgerRepo.Append(inEntry); err != nil {
			return err
		}
		if err := applyDelta(stockRepo, in.ProductID, in.ToLocationID, in.Quantity*int64(inEffect)); err != nil {
			return err
		}

		result.OutTransactionID = outEntry.ID
		result.InTransactionID = inEntry.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetQuantity lee el saldo proyectado; 0 si no existe fila. Nunca crea la fila.
func (uc *LedgerUseCase) GetQuantity(productID, locationID int64) (int64, error) {
	if productID <= 0 || locationID <= 0 {
		return 0, domain.ErrValidation
	}
	level, err := uc.stockRepo.Get(productID, locationID)
	if err != nil {
		return 0, err
	}
	if level == nil {
		return 0, nil
	}
	return level.Quantity, nil
}

// SetQuantity reconteo manual: sobrescribe el saldo proyectado y estampa
// last_counted_at, sin pasar por el libro. La divergencia resultante entre el
// fold del libro y el saldo es deliberada: el reconteo es un reset a la verdad
// física, no un evento del libro.
func (uc *LedgerUseCase) SetQuantity(productID, locationID, quantity int64, countedAt *time.Time) error {
	if productID <= 0 || locationID <= 0 {
		return domain.ErrValidation
	}
	at := time.Now()
	if countedAt != nil {
		at = *countedAt
	}
	return uc.stockRepo.SetCounted(productID, locationID, quantity, at)
}

// applyDelta bloquea la fila de saldo (creándola en cero si es el primer
// movimiento del par producto/ubicación) y aplica el delta. El bloqueo evita
// que escritores concurrentes pierdan actualizaciones sobre el mismo par.
func applyDelta(stockRepo repository.StockLevelRepository, productID, locationID, delta int64) error {
	level, err := stockRepo.GetForUpdate(productID, locationID)
	if err != nil {
		return err
	}
	level.Quantity += delta
	return stockRepo.Upsert(level)
}
