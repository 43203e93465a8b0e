package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test en memoria
//
// memStore implementa LedgerRepository y StockLevelRepository sobre mapas, y
// memTxRunner emula la transacción de la BD: serializa los callbacks con un
// mutex (equivalente al bloqueo de fila) y restaura un snapshot si el callback
// falla (equivalente al rollback).
// ──────────────────────────────────────────────────────────────────────────────

type productInfo struct {
	name     string
	sku      string
	category string
	minStock int64
	maxStock *int64
	active   bool
}

type memStore struct {
	mu        sync.Mutex
	entries   []entity.LedgerEntry
	nextID    int64
	levels    map[[2]int64]entity.StockLevel
	products  map[int64]productInfo
	locations map[int64]string

	failUpsert bool // fuerza error en Upsert para probar el rollback
}

var _ repository.LedgerRepository = (*memStore)(nil)
var _ repository.StockLevelRepository = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		nextID:    1,
		levels:    make(map[[2]int64]entity.StockLevel),
		products:  make(map[int64]productInfo),
		locations: make(map[int64]string),
	}
}

func (s *memStore) addProduct(id int64, p productInfo) { s.products[id] = p }
func (s *memStore) addLocation(id int64, name string)  { s.locations[id] = name }

// Append asigna ids monótonos crecientes, como el BIGSERIAL de la tabla.
func (s *memStore) Append(entry *entity.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[entry.ProductID]; !ok {
		return domain.ErrReferential
	}
	if _, ok := s.locations[entry.LocationID]; !ok {
		return domain.ErrReferential
	}
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *memStore) GetByID(id int64) (*entity.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) History(_ context.Context, filter repository.HistoryFilter) ([]repository.LedgerHistoryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []repository.LedgerHistoryRow
	for _, e := range s.entries {
		if filter.ProductID != nil && e.ProductID != *filter.ProductID {
			continue
		}
		if filter.LocationID != nil && e.LocationID != *filter.LocationID {
			continue
		}
		if filter.From != nil && e.TransactionDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.TransactionDate.After(*filter.To) {
			continue
		}
		p := s.products[e.ProductID]
		rows = append(rows, repository.LedgerHistoryRow{
			LedgerEntry:  e,
			ProductName:  p.name,
			SKU:          p.sku,
			LocationName: s.locations[e.LocationID],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TransactionDate.Equal(rows[j].TransactionDate) {
			return rows[i].TransactionDate.After(rows[j].TransactionDate)
		}
		return rows[i].ID > rows[j].ID
	})
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

func (s *memStore) Get(productID, locationID int64) (*entity.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	level, ok := s.levels[[2]int64{productID, locationID}]
	if !ok {
		return nil, nil
	}
	copied := level
	return &copied, nil
}

func (s *memStore) GetForUpdate(productID, locationID int64) (*entity.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return nil, domain.ErrReferential
	}
	if _, ok := s.locations[locationID]; !ok {
		return nil, domain.ErrReferential
	}
	key := [2]int64{productID, locationID}
	level, ok := s.levels[key]
	if !ok {
		level = entity.StockLevel{ProductID: productID, LocationID: locationID, UpdatedAt: time.Now()}
		s.levels[key] = level
	}
	copied := level
	return &copied, nil
}

func (s *memStore) Upsert(level *entity.StockLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpsert {
		return domain.ErrReferential
	}
	stored := *level
	stored.UpdatedAt = time.Now()
	s.levels[[2]int64{level.ProductID, level.LocationID}] = stored
	return nil
}

func (s *memStore) SetCounted(productID, locationID, quantity int64, countedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return domain.ErrReferential
	}
	if _, ok := s.locations[locationID]; !ok {
		return domain.ErrReferential
	}
	s.levels[[2]int64{productID, locationID}] = entity.StockLevel{
		ProductID:     productID,
		LocationID:    locationID,
		Quantity:      quantity,
		LastCountedAt: &countedAt,
		UpdatedAt:     time.Now(),
	}
	return nil
}

func (s *memStore) Levels(_ context.Context, productID, locationID *int64) ([]repository.LevelRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []repository.LevelRow
	for key, level := range s.levels {
		if productID != nil && key[0] != *productID {
			continue
		}
		if locationID != nil && key[1] != *locationID {
			continue
		}
		p := s.products[key[0]]
		rows = append(rows, repository.LevelRow{
			ProductID:     key[0],
			ProductName:   p.name,
			SKU:           p.sku,
			LocationID:    key[1],
			LocationName:  s.locations[key[1]],
			Quantity:      level.Quantity,
			LastCountedAt: level.LastCountedAt,
			UpdatedAt:     level.UpdatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductName != rows[j].ProductName {
			return rows[i].ProductName < rows[j].ProductName
		}
		return rows[i].LocationName < rows[j].LocationName
	})
	return rows, nil
}

func (s *memStore) BelowMinimum(_ context.Context) ([]repository.ReorderRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make(map[int64]int64)
	for key, level := range s.levels {
		totals[key[0]] += level.Quantity
	}
	var rows []repository.ReorderRow
	for id, p := range s.products {
		if !p.active || p.minStock <= 0 {
			continue
		}
		total := totals[id]
		if total >= p.minStock {
			continue
		}
		target := p.minStock
		if p.maxStock != nil {
			target = *p.maxStock
		}
		rows = append(rows, repository.ReorderRow{
			ProductID:       id,
			ProductName:     p.name,
			SKU:             p.sku,
			Category:        p.category,
			TotalQuantity:   total,
			MinStockLevel:   p.minStock,
			QuantityToOrder: target - total,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].QuantityToOrder > rows[j].QuantityToOrder
	})
	return rows, nil
}

// memTxRunner emula la transacción: serializa con txMu y revierte al snapshot
// si el callback falla.
type memTxRunner struct {
	txMu  sync.Mutex
	store *memStore
}

var _ inventory.TxRunner = (*memTxRunner)(nil)

func newMemTxRunner(store *memStore) *memTxRunner {
	return &memTxRunner{store: store}
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	stockRepo repository.StockLevelRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.store.mu.Lock()
	snapEntries := append([]entity.LedgerEntry(nil), r.store.entries...)
	snapNextID := r.store.nextID
	snapLevels := make(map[[2]int64]entity.StockLevel, len(r.store.levels))
	for k, v := range r.store.levels {
		snapLevels[k] = v
	}
	r.store.mu.Unlock()

	if err := fn(r.store, r.store); err != nil {
		r.store.mu.Lock()
		r.store.entries = snapEntries
		r.store.nextID = snapNextID
		r.store.levels = snapLevels
		r.store.mu.Unlock()
		return err
	}
	return nil
}

// fakeTypeRepo registro estático de tipos en memoria.
type fakeTypeRepo struct {
	types map[int64]entity.TransactionType
}

var _ repository.TransactionTypeRepository = (*fakeTypeRepo)(nil)

// seededTypeRepo devuelve el registro con los 8 tipos sembrados del esquema.
func seededTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: map[int64]entity.TransactionType{
		entity.TypePurchase:    {ID: entity.TypePurchase, Name: "Purchase", AffectsInventory: 1},
		entity.TypeSale:        {ID: entity.TypeSale, Name: "Sale", AffectsInventory: -1},
		entity.TypeAdjustment:  {ID: entity.TypeAdjustment, Name: "Adjustment", AffectsInventory: 0},
		entity.TypeTransferIn:  {ID: entity.TypeTransferIn, Name: "Transfer In", AffectsInventory: 1},
		entity.TypeTransferOut: {ID: entity.TypeTransferOut, Name: "Transfer Out", AffectsInventory: -1},
		entity.TypeReturnIn:    {ID: entity.TypeReturnIn, Name: "Return In", AffectsInventory: 1},
		entity.TypeReturnOut:   {ID: entity.TypeReturnOut, Name: "Return Out", AffectsInventory: -1},
		entity.TypeWriteOff:    {ID: entity.TypeWriteOff, Name: "Write Off", AffectsInventory: -1},
	}}
}

func (r *fakeTypeRepo) EffectOf(_ context.Context, typeID int64) (int, error) {
	t, ok := r.types[typeID]
	if !ok {
		return 0, domain.ErrInvalidTransactionType
	}
	return t.AffectsInventory, nil
}

func (r *fakeTypeRepo) List(_ context.Context) ([]entity.TransactionType, error) {
	out := make([]entity.TransactionType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
