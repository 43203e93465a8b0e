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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING location_id`
	err := r.q.QueryRow(context.Background(), query,
		location.Name, location.Description, location.IsActive,
		location.CreatedAt, location.UpdatedAt,
	).Scan(&location.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	query := `
		SELECT location_id, name, description, is_active, created_at, updated_at
		FROM locations WHERE location_id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Description, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

func (r *LocationRepo) List() ([]*entity.Location, error) {
	query := `
		SELECT location_id, name, description, is_active, created_at, updated_at
		FROM locations WHERE is_active = TRUE ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations
		SET name = $1, description = $2, is_active = $3, updated_at = $4
		WHERE location_id = $5`
	tag, err := r.q.Exec(context.Background(), query,
		location.Name, location.Description, location.IsActive, location.UpdatedAt, location.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
