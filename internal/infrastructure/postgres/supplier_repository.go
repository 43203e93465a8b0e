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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact_person, email, phone, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING supplier_id`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone,
		supplier.Address, supplier.IsActive, supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `
		SELECT supplier_id, name, contact_person, email, phone, address, is_active, created_at, updated_at
		FROM suppliers WHERE supplier_id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT supplier_id, name, contact_person, email, phone, address, is_active, created_at, updated_at
		FROM suppliers WHERE is_active = TRUE ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, contact_person = $2, email = $3, phone = $4, address = $5, is_active = $6, updated_at = $7
		WHERE supplier_id = $8`
	tag, err := r.q.Exec(context.Background(), query,
		supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone,
		supplier.Address, supplier.IsActive, supplier.UpdatedAt, supplier.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
