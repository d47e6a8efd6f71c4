package postgres_test

import (
	"context"
	"testing"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var requestCols = []string{
	"id", "request_id", "user_id", "service_type_id", "title", "description", "priority", "status",
	"total_amount_cents", "admin_notes", "rejection_reason", "approved_on", "rejected_on", "created_on", "updated_on",
}

func requestRow(id int32, code string, userID int32, status domain.RequestStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(requestCols).
		AddRow(id, code, userID, int32(5), "Title", "Description", "standard", string(status),
			nil, "", "", nil, nil, now, now)
}

func TestServiceRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewServiceRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.ServiceRequest{
			RequestID:     "REQ-AAAA1111",
			UserID:        2,
			ServiceTypeID: 5,
			Title:         "Oil change",
			Description:   "Regular service",
			Priority:      domain.RequestPriorityStandard,
			Status:        domain.RequestStatusPending,
		}

		mock.ExpectQuery("INSERT INTO service_requests").
			WithArgs(req.RequestID, req.UserID, req.ServiceTypeID, req.Title, req.Description,
				req.Priority, req.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), req.ID)
	})
}

func TestServiceRequestRepository_GetByRequestID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewServiceRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM service_requests WHERE request_id").
			WithArgs("REQ-AAAA1111").
			WillReturnRows(requestRow(10, "REQ-AAAA1111", 2, domain.RequestStatusPending))

		req, err := repo.GetByRequestID(ctx, "REQ-AAAA1111")
		assert.NoError(t, err)
		assert.Equal(t, int32(10), req.ID)
		assert.Equal(t, domain.RequestStatusPending, req.Status)
		assert.Nil(t, req.ApprovedOn)
		assert.Nil(t, req.TotalAmountCents)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM service_requests WHERE request_id").
			WithArgs("REQ-MISSING1").
			WillReturnRows(sqlmock.NewRows(requestCols))

		_, err := repo.GetByRequestID(ctx, "REQ-MISSING1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServiceRequestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewServiceRequestRepository(db)
	ctx := context.Background()

	now := time.Now()
	req := &domain.ServiceRequest{
		ID:         10,
		RequestID:  "REQ-AAAA1111",
		UserID:     2,
		Status:     domain.RequestStatusApproved,
		ApprovedOn: &now,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE service_requests").
			WithArgs(req.Status, req.TotalAmountCents, req.AdminNotes, req.RejectionReason,
				req.ApprovedOn, req.RejectedOn, sqlmock.AnyArg(), req.ID, domain.RequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, req, domain.RequestStatusPending)
		assert.NoError(t, err)
	})

	t.Run("Stale Status Reports Conflict", func(t *testing.T) {
		mock.ExpectExec("UPDATE service_requests").
			WithArgs(req.Status, req.TotalAmountCents, req.AdminNotes, req.RejectionReason,
				req.ApprovedOn, req.RejectedOn, sqlmock.AnyArg(), req.ID, domain.RequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, req, domain.RequestStatusPending)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestServiceRequestRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewServiceRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM`).
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM service_requests WHERE user_id (.+) ORDER BY created_on DESC").
			WithArgs(int32(2), int32(20), int32(0)).
			WillReturnRows(requestRow(10, "REQ-AAAA1111", 2, domain.RequestStatusPending))

		requests, total, err := repo.ListByUser(ctx, 2, "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, requests, 1)
		assert.Equal(t, int32(2), requests[0].UserID)
	})
}

func TestServiceRequestRepository_ListForStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewServiceRequestRepository(db)
	ctx := context.Background()

	t.Run("All Users", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, status FROM service_requests").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
				AddRow(1, 2, "pending").
				AddRow(2, 3, "completed"))

		requests, err := repo.ListForStats(ctx, 0)
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
		assert.Equal(t, domain.RequestStatusCompleted, requests[1].Status)
	})

	t.Run("Scoped To User", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, status FROM service_requests WHERE user_id").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
				AddRow(1, 2, "pending"))

		requests, err := repo.ListForStats(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})
}
