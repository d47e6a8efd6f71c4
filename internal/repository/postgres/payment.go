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

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, payment_id, request_id, user_id, amount_cents, payment_method, status, transaction_id, due_on, processed_on, created_on`

func scanPayment(row interface{ Scan(...any) error }, p *domain.Payment) error {
	return row.Scan(&p.ID, &p.PaymentID, &p.RequestID, &p.UserID, &p.AmountCents, &p.PaymentMethod,
		&p.Status, &p.TransactionID, &p.DueOn, &p.ProcessedOn, &p.CreatedOn)
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (payment_id, request_id, user_id, amount_cents, payment_method, status, transaction_id, due_on, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	p.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, p.PaymentID, p.RequestID, p.UserID, p.AmountCents, p.PaymentMethod,
		p.Status, p.TransactionID, p.DueOn, p.CreatedOn).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	if err := scanPayment(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1`
	if err := scanPayment(r.db.QueryRowContext(ctx, query, paymentID), p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET amount_cents=$1, payment_method=$2, status=$3, transaction_id=$4, due_on=$5, processed_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, p.AmountCents, p.PaymentMethod, p.Status, p.TransactionID, p.DueOn, p.ProcessedOn, p.ID)
	return err
}

func (r *paymentRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE request_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Payment, int32, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	return r.listPaged(ctx, query, args, page, pageSize)
}

func (r *paymentRepository) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Payment, int32, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	return r.listPaged(ctx, query, args, page, pageSize)
}

// ListOverdueCandidates returns pending payments whose due date has passed.
func (r *paymentRepository) ListOverdueCandidates(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 AND due_on < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.PaymentStatusPending, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *paymentRepository) ListOverdue(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1`
	rows, err := r.db.QueryContext(ctx, query, domain.PaymentStatusOverdue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *paymentRepository) listPaged(ctx context.Context, query string, args []interface{}, page, pageSize int32) ([]domain.Payment, int32, error) {
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

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, 0, err
	}
	return payments, count, nil
}

func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
