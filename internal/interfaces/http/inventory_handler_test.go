package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
	apphttp "github.com/jhoicas/Inventario-ledger/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para levantar la API completa con app.Test
// ──────────────────────────────────────────────────────────────────────────────

type testStore struct {
	mu      sync.Mutex
	entries []entity.LedgerEntry
	nextID  int64
	levels  map[[2]int64]entity.StockLevel
	valid   map[int64]bool // productos y ubicaciones conocidos comparten espacio de ids en el test
	types   map[int64]entity.TransactionType
}

var _ repository.LedgerRepository = (*testStore)(nil)
var _ repository.StockLevelRepository = (*testStore)(nil)
var _ repository.TransactionTypeRepository = (*testStore)(nil)
var _ inventory.TxRunner = (*testStore)(nil)

func newTestStore() *testStore {
	return &testStore{
		nextID: 1,
		levels: make(map[[2]int64]entity.StockLevel),
		valid:  map[int64]bool{1: true, 2: true, 10: true, 20: true},
		types: map[int64]entity.TransactionType{
			entity.TypePurchase:    {ID: entity.TypePurchase, Name: "Purchase", AffectsInventory: 1},
			entity.TypeSale:        {ID: entity.TypeSale, Name: "Sale", AffectsInventory: -1},
			entity.TypeAdjustment:  {ID: entity.TypeAdjustment, Name: "Adjustment", AffectsInventory: 0},
			entity.TypeTransferIn:  {ID: entity.TypeTransferIn, Name: "Transfer In", AffectsInventory: 1},
			entity.TypeTransferOut: {ID: entity.TypeTransferOut, Name: "Transfer Out", AffectsInventory: -1},
			entity.TypeReturnIn:    {ID: entity.TypeReturnIn, Name: "Return In", AffectsInventory: 1},
			entity.TypeReturnOut:   {ID: entity.TypeReturnOut, Name: "Return Out", AffectsInventory: -1},
			entity.TypeWriteOff:    {ID: entity.TypeWriteOff, Name: "Write Off", AffectsInventory: -1},
		},
	}
}

func (s *testStore) Append(entry *entity.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.valid[entry.ProductID] || !s.valid[entry.LocationID] {
		return domain.ErrReferential
	}
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *testStore) GetByID(id int64) (*entity.LedgerEntry, error) {
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

func (s *testStore) History(_ context.Context, filter repository.HistoryFilter) ([]repository.LedgerHistoryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []repository.LedgerHistoryRow
	for _, e := range s.entries {
		if filter.ProductID != nil && e.ProductID != *filter.ProductID {
			continue
		}
		rows = append(rows, repository.LedgerHistoryRow{LedgerEntry: e, TransactionType: s.types[e.TransactionTypeID].Name})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

func (s *testStore) Get(productID, locationID int64) (*entity.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	level, ok := s.levels[[2]int64{productID, locationID}]
	if !ok {
		return nil, nil
	}
	copied := level
	return &copied, nil
}

func (s *testStore) GetForUpdate(productID, locationID int64) (*entity.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.valid[productID] || !s.valid[locationID] {
		return nil, domain.ErrReferential
	}
	key := [2]int64{productID, locationID}
	level, ok := s.levels[key]
	if !ok {
		level = entity.StockLevel{ProductID: productID, LocationID: locationID}
		s.levels[key] = level
	}
	copied := level
	return &copied, nil
}

func (s *testStore) Upsert(level *entity.StockLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *level
	stored.UpdatedAt = time.Now()
	s.levels[[2]int64{level.ProductID, level.LocationID}] = stored
	return nil
}

func (s *testStore) SetCounted(productID, locationID, quantity int64, countedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.valid[productID] || !s.valid[locationID] {
		return domain.ErrReferential
	}
	s.levels[[2]int64{productID, locationID}] = entity.StockLevel{
		ProductID: productID, LocationID: locationID, Quantity: quantity,
		LastCountedAt: &countedAt, UpdatedAt: time.Now(),
	}
	return nil
}

func (s *testStore) Levels(_ context.Context, productID, locationID *int64) ([]repository.LevelRow, error) {
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
		rows = append(rows, repository.LevelRow{
			ProductID: key[0], LocationID: key[1], Quantity: level.Quantity, UpdatedAt: level.UpdatedAt,
		})
	}
	return rows, nil
}

func (s *testStore) BelowMinimum(_ context.Context) ([]repository.ReorderRow, error) {
	return nil, nil
}

func (s *testStore) EffectOf(_ context.Context, typeID int64) (int, error) {
	t, ok := s.types[typeID]
	if !ok {
		return 0, domain.ErrInvalidTransactionType
	}
	return t.AffectsInventory, nil
}

func (s *testStore) List(_ context.Context) ([]entity.TransactionType, error) {
	out := make([]entity.TransactionType, 0, len(s.types))
	for _, t := range s.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Run del testStore: los dobles no necesitan rollback para los casos felices
// del handler; la atomicidad se prueba en el paquete del caso de uso.
func (s *testStore) Run(_ context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	stockRepo repository.StockLevelRepository,
) error) error {
	return fn(s, s)
}

// buildTestApp levanta la app Fiber con las rutas reales sobre el doble.
func buildTestApp(t *testing.T) (*fiber.App, *testStore) {
	t.Helper()
	store := newTestStore()
	ledgerUC := inventory.NewLedgerUseCase(store, store, store)
	reportUC := inventory.NewReportUseCase(store, store, store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC: ledgerUC,
		ReportUC: reportUC,
		// Los maestros no se ejercitan en este archivo pero el router los exige.
		ProductUC:  usecase.NewProductUseCase(nil),
		LocationUC: usecase.NewLocationUseCase(nil),
		CategoryUC: usecase.NewCategoryUseCase(nil),
		SupplierUC: usecase.NewSupplierUseCase(nil),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// POST /api/inventory/transactions feliz: 201 con el id del asiento.
func TestRecordTransaction_Created(t *testing.T) {
	app, store := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 1, LocationID: 10, TransactionTypeID: entity.TypePurchase, Quantity: 10,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decode[dto.RecordTransactionResponse](t, resp)
	assert.Equal(t, int64(1), body.TransactionID)
	assert.Len(t, store.entries, 1)
}

// Cantidad no positiva → 400 VALIDATION.
func TestRecordTransaction_CantidadInvalida(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 1, LocationID: 10, TransactionTypeID: entity.TypePurchase, Quantity: 0,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

// Tipo fuera del registro → 400 INVALID_TRANSACTION_TYPE.
func TestRecordTransaction_TipoDesconocido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 1, LocationID: 10, TransactionTypeID: 99, Quantity: 5,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_TRANSACTION_TYPE", body.Code)
}

// Producto desconocido → 404 NOT_FOUND (lo resuelve la FK, no el core).
func TestRecordTransaction_ProductoInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 777, LocationID: 10, TransactionTypeID: entity.TypePurchase, Quantity: 5,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// El flujo completo por HTTP: compra, venta y consulta de saldo.
func TestGetQuantity_FoldDelLibro(t *testing.T) {
	app, _ := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 1, LocationID: 10, TransactionTypeID: entity.TypePurchase, Quantity: 10,
	})
	doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 1, LocationID: 10, TransactionTypeID: entity.TypeSale, Quantity: 3,
	})

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/levels/1/10", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[dto.QuantityResponse](t, resp)
	assert.Equal(t, int64(7), body.Quantity)
}

// Consultar un par sin movimientos devuelve 0, nunca 404.
func TestGetQuantity_SinMovimientos(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/levels/2/20", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[dto.QuantityResponse](t, resp)
	assert.Zero(t, body.Quantity)
}

// PUT de reconteo sobrescribe el saldo sin tocar el libro.
func TestRecount_Sobrescribe(t *testing.T) {
	app, store := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 1, LocationID: 10, TransactionTypeID: entity.TypePurchase, Quantity: 10,
	})
	resp := doJSON(t, app, http.MethodPut, "/api/inventory/levels/1/10", dto.RecountRequest{Quantity: 8})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	get := doJSON(t, app, http.MethodGet, "/api/inventory/levels/1/10", nil)
	body := decode[dto.QuantityResponse](t, get)
	assert.Equal(t, int64(8), body.Quantity)
	assert.Len(t, store.entries, 1, "el reconteo no apendiza al libro")
}

// POST /api/inventory/transfers registra los dos asientos enlazados.
func TestTransfer_Atomico(t *testing.T) {
	app, store := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
		ProductID: 1, LocationID: 10, TransactionTypeID: entity.TypePurchase, Quantity: 10,
	})
	resp := doJSON(t, app, http.MethodPost, "/api/inventory/transfers", dto.TransferRequest{
		ProductID: 1, FromLocationID: 10, ToLocationID: 20, Quantity: 4,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decode[dto.TransferResponse](t, resp)
	assert.NotEmpty(t, body.ReferenceNumber)
	assert.Len(t, store.entries, 3)

	origen := decode[dto.QuantityResponse](t, doJSON(t, app, http.MethodGet, "/api/inventory/levels/1/10", nil))
	destino := decode[dto.QuantityResponse](t, doJSON(t, app, http.MethodGet, "/api/inventory/levels/1/20", nil))
	assert.Equal(t, int64(6), origen.Quantity)
	assert.Equal(t, int64(4), destino.Quantity)
}

// GET /api/inventory/transaction-types expone el registro completo.
func TestTransactionTypes_Listado(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/transaction-types", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[[]dto.TransactionTypeDTO](t, resp)
	require.Len(t, body, 8)
	assert.Equal(t, int64(1), body[0].ID)
	assert.Equal(t, "Purchase", body[0].Name)
}

// GET /api/inventory/transactions devuelve el historial más reciente primero.
func TestHistory_MasRecientePrimero(t *testing.T) {
	app, _ := buildTestApp(t)

	for i := 0; i < 3; i++ {
		doJSON(t, app, http.MethodPost, "/api/inventory/transactions", dto.RecordTransactionRequest{
			ProductID: 1, LocationID: 10, TransactionTypeID: entity.TypePurchase, Quantity: int64(i + 1),
		})
	}
	resp := doJSON(t, app, http.MethodGet, "/api/inventory/transactions?limit=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[[]dto.TransactionHistoryDTO](t, resp)
	require.Len(t, body, 2)
	assert.Greater(t, body[0].TransactionID, body[1].TransactionID)
}

// Un query param malformado se rechaza con 400 antes de llegar al caso de uso.
func TestHistory_FiltroInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/transactions?from=ayer", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
