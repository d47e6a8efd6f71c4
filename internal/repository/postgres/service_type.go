package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
)

type serviceTypeRepository struct {
	db *sql.DB
}

func NewServiceTypeRepository(db *sql.DB) repository.ServiceTypeRepository {
	return &serviceTypeRepository{db: db}
}

func (r *serviceTypeRepository) Create(ctx context.Context, st *domain.ServiceType) error {
	query := `INSERT INTO service_types (name, description, base_price_cents, is_active, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, st.Name, st.Description, st.BasePriceCents, st.IsActive, time.Now()).Scan(&st.ID)
}

func (r *serviceTypeRepository) GetByID(ctx context.Context, id int32) (*domain.ServiceType, error) {
	st := &domain.ServiceType{}
	query := `SELECT id, name, description, base_price_cents, is_active, created_on FROM service_types WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&st.ID, &st.Name, &st.Description, &st.BasePriceCents, &st.IsActive, &st.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

func (r *serviceTypeRepository) List(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error) {
	query := `SELECT id, name, description, base_price_cents, is_active, created_on FROM service_types`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.ServiceType
	for rows.Next() {
		var st domain.ServiceType
		if err := rows.Scan(&st.ID, &st.Name, &st.Description, &st.BasePriceCents, &st.IsActive, &st.CreatedOn); err != nil {
			return nil, err
		}
		types = append(types, st)
	}
	return types, rows.Err()
}

func (r *serviceTypeRepository) Update(ctx context.Context, st *domain.ServiceType) error {
	res, err := r.db.ExecContext(ctx, `UPDATE service_types SET name=$1, description=$2, base_price_cents=$3, is_active=$4 WHERE id=$5`,
		st.Name, st.Description, st.BasePriceCents, st.IsActive, st.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
