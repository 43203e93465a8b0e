package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// ProductRepository puerto de persistencia para productos (datos maestros).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List lista productos activos ordenados por nombre.
	List(limit, offset int) ([]*entity.Product, error)
	// Search busca productos activos por nombre o SKU (LIKE).
	Search(term string) ([]*entity.Product, error)
}
