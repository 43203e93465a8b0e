package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// LocationRepository puerto de persistencia para ubicaciones (datos maestros).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	// List lista ubicaciones activas ordenadas por nombre.
	List() ([]*entity.Location, error)
	Update(location *entity.Location) error
}
