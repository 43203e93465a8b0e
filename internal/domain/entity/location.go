package entity

import "time"

// Location ubicación física de inventario (bodega, tienda, etc.).
type Location struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
