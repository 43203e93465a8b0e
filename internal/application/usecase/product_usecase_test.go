package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// fakeProductRepo repositorio de productos en memoria para los tests.
type fakeProductRepo struct {
	byID   map[int64]*entity.Product
	nextID int64
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[int64]*entity.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.byID {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	product.ID = r.nextID
	r.nextID++
	copied := *product
	r.byID[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *product
	r.byID[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.IsActive {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(term string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if !p.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) ||
			strings.Contains(strings.ToLower(p.SKU), strings.ToLower(term)) {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Crear asigna id, activa el producto y respeta los umbrales de stock.
func TestProductCreate_AsignaIDYActiva(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Create(dto.CreateProductRequest{
		SKU:           "ELEC-001",
		Name:          "Teclado inalámbrico",
		UnitPrice:     decimal.NewFromFloat(89.90),
		MinStockLevel: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.True(t, resp.IsActive, "los productos nacen activos")
	assert.Equal(t, int64(10), resp.MinStockLevel)
}

// Sin SKU o sin nombre no hay producto.
func TestProductCreate_Validacion(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Sin SKU"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "X-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "X-1", Name: "Mínimo negativo", MinStockLevel: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// El SKU es único dentro del catálogo.
func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{SKU: "ELEC-001", Name: "Teclado"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{SKU: "ELEC-001", Name: "Otro teclado"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Update toca solo los campos presentes; los nil quedan como estaban.
func TestProductUpdate_CamposParciales(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created, err := uc.Create(dto.CreateProductRequest{
		SKU:           "ELEC-001",
		Name:          "Teclado",
		MinStockLevel: 10,
	})
	require.NoError(t, err)

	newMin := int64(25)
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{MinStockLevel: &newMin})
	require.NoError(t, err)
	assert.Equal(t, int64(25), updated.MinStockLevel)
	assert.Equal(t, "Teclado", updated.Name, "el nombre no estaba en el request y no cambia")
	assert.Equal(t, "ELEC-001", updated.SKU)
}

// Actualizar un id inexistente devuelve nil sin error (el handler lo vuelve 404).
func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Update(999, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// Search con término vacío cae en el listado paginado.
func TestProductSearch_PorNombreOSKU(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Create(dto.CreateProductRequest{SKU: "ELEC-001", Name: "Teclado inalámbrico"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{SKU: "OFIC-001", Name: "Resma papel"})
	require.NoError(t, err)

	byName, err := uc.Search("teclado")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "ELEC-001", byName[0].SKU)

	bySKU, err := uc.Search("OFIC")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)

	all, err := uc.Search("")
	require.NoError(t, err)
	assert.Len(t, all, 2, "término vacío lista todo")
}
