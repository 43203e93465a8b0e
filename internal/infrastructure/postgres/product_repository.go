package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del catálogo de productos sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `product_id, sku, name, description, category_id, supplier_id, unit_price, min_stock_level, max_stock_level, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.UnitPrice, &p.MinStockLevel, &p.MaxStockLevel, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserta el producto y asigna product.ID. Un SKU repetido se traduce
// a domain.ErrDuplicate; una categoría o proveedor inexistente, a ErrReferential.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (sku, name, description, category_id, supplier_id, unit_price, min_stock_level, max_stock_level, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING product_id`
	err := r.q.QueryRow(context.Background(), query,
		product.SKU, product.Name, product.Description, product.CategoryID, product.SupplierID,
		product.UnitPrice, product.MinStockLevel, product.MaxStockLevel, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferential
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1`, productColumns)
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE sku = $1`, productColumns)
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $1, name = $2, description = $3, category_id = $4, supplier_id = $5,
		    unit_price = $6, min_stock_level = $7, max_stock_level = $8, is_active = $9, updated_at = $10
		WHERE product_id = $11`
	tag, err := r.q.Exec(context.Background(), query,
		product.SKU, product.Name, product.Description, product.CategoryID, product.SupplierID,
		product.UnitPrice, product.MinStockLevel, product.MaxStockLevel, product.IsActive,
		product.UpdatedAt, product.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferential
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos activos ordenados por nombre, con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_active = TRUE
		ORDER BY name LIMIT $1 OFFSET $2`, productColumns)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Search busca productos activos por coincidencia parcial de nombre o SKU.
func (r *ProductRepo) Search(term string) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_active = TRUE AND (name ILIKE $1 OR sku ILIKE $1)
		ORDER BY name`, productColumns)
	rows, err := r.q.Query(context.Background(), query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
