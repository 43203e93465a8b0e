package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores (datos maestros).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	// List lista proveedores activos ordenados por nombre.
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
}
