package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías (datos maestros).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
}
