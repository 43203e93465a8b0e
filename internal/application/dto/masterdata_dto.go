package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	SupplierID    *int64          `json:"supplier_id,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel *int64          `json:"max_stock_level,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    *int64           `json:"category_id,omitempty"`
	SupplierID    *int64           `json:"supplier_id,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	MinStockLevel *int64           `json:"min_stock_level,omitempty"`
	MaxStockLevel *int64           `json:"max_stock_level,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	SupplierID    *int64          `json:"supplier_id,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel *int64          `json:"max_stock_level,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateLocationRequest body para PUT /api/locations/:id. Campos nil no se tocan.
type UpdateLocationRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// LocationResponse representación HTTP de una ubicación.
type LocationResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateCategoryRequest body para PUT /api/categories/:id. Campos nil no se tocan.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id. Campos nil no se tocan.
type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	IsActive      bool    `json:"is_active"`
}
