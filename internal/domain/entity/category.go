package entity

import "time"

// Category categoría de producto (datos maestros, solo para joins de reporte).
type Category struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
