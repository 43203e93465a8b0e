package entity

import "time"

// Supplier proveedor (datos maestros, solo para joins de reporte).
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
