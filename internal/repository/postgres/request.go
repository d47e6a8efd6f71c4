package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
)

type serviceRequestRepository struct {
	db *sql.DB
}

func NewServiceRequestRepository(db *sql.DB) repository.ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

const requestColumns = `id, request_id, user_id, service_type_id, title, description, priority, status,
	total_amount_cents, admin_notes, rejection_reason, approved_on, rejected_on, created_on, updated_on`

func scanRequest(row interface{ Scan(...any) error }, req *domain.ServiceRequest) error {
	return row.Scan(&req.ID, &req.RequestID, &req.UserID, &req.ServiceTypeID, &req.Title, &req.Description,
		&req.Priority, &req.Status, &req.TotalAmountCents, &req.AdminNotes, &req.RejectionReason,
		&req.ApprovedOn, &req.RejectedOn, &req.CreatedOn, &req.UpdatedOn)
}

func (r *serviceRequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	query := `INSERT INTO service_requests (request_id, user_id, service_type_id, title, description, priority, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	req.CreatedOn = now
	req.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, req.RequestID, req.UserID, req.ServiceTypeID, req.Title, req.Description,
		req.Priority, req.Status, req.CreatedOn, req.UpdatedOn).Scan(&req.ID)
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id int32) (*domain.ServiceRequest, error) {
	req := &domain.ServiceRequest{}
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE id = $1`
	if err := scanRequest(r.db.QueryRowContext(ctx, query, id), req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *serviceRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	req := &domain.ServiceRequest{}
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE request_id = $1`
	if err := scanRequest(r.db.QueryRowContext(ctx, query, requestID), req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *serviceRequestRepository) Update(ctx context.Context, req *domain.ServiceRequest) error {
	query := `UPDATE service_requests SET title=$1, description=$2, priority=$3, total_amount_cents=$4, admin_notes=$5, updated_on=$6 WHERE id=$7`
	req.UpdatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, req.Title, req.Description, req.Priority, req.TotalAmountCents, req.AdminNotes, req.UpdatedOn, req.ID)
	return err
}

// UpdateStatus writes the transitioned row only when the stored status still
// matches expectedStatus. A zero rows-affected result means another writer got
// there first and the caller's read is stale.
func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, req *domain.ServiceRequest, expectedStatus domain.RequestStatus) error {
	query := `UPDATE service_requests
	          SET status=$1, total_amount_cents=$2, admin_notes=$3, rejection_reason=$4, approved_on=$5, rejected_on=$6, updated_on=$7
	          WHERE id=$8 AND status=$9`
	req.UpdatedOn = time.Now()
	res, err := r.db.ExecContext(ctx, query, req.Status, req.TotalAmountCents, req.AdminNotes, req.RejectionReason,
		req.ApprovedOn, req.RejectedOn, req.UpdatedOn, req.ID, expectedStatus)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *serviceRequestRepository) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	return r.list(ctx, query, args, status != "", page, pageSize)
}

func (r *serviceRequestRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE user_id = $1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	return r.list(ctx, query, args, true, page, pageSize)
}

func (r *serviceRequestRepository) ListForStats(ctx context.Context, userID int32) ([]domain.ServiceRequest, error) {
	query := `SELECT id, user_id, status FROM service_requests`
	var args []interface{}
	if userID != 0 {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ServiceRequest
	for rows.Next() {
		var req domain.ServiceRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Status); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *serviceRequestRepository) list(ctx context.Context, query string, args []interface{}, _ bool, page, pageSize int32) ([]domain.ServiceRequest, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM (` + query + `) AS sub`
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.ServiceRequest
	for rows.Next() {
		var req domain.ServiceRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, count, rows.Err()
}
