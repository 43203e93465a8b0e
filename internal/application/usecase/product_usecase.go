package usecase

import (
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos (datos maestros).
// El saldo nunca se toca aquí: vive en la proyección y se mueve vía el libro.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El id lo asigna la BD.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrValidation
	}
	if in.MinStockLevel < 0 {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	product := &entity.Product{
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		UnitPrice:     in.UnitPrice,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos presentes; los nil no se tocan.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		product.MaxStockLevel = in.MaxStockLevel
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Search busca productos activos por nombre o SKU.
func (uc *ProductUseCase) Search(term string) ([]dto.ProductResponse, error) {
	if term == "" {
		return uc.List(dto.PageRequest{})
	}
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		UnitPrice:     p.UnitPrice,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
