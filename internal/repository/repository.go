package repository

import (
	"context"

	"autoportal-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	SetActive(ctx context.Context, id int32, active bool) error
	SetRole(ctx context.Context, id int32, role domain.Role) error
}

type ServiceTypeRepository interface {
	Create(ctx context.Context, st *domain.ServiceType) error
	GetByID(ctx context.Context, id int32) (*domain.ServiceType, error)
	List(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error)
	Update(ctx context.Context, st *domain.ServiceType) error
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ServiceRequest, error)
	GetByRequestID(ctx context.Context, requestID string) (*domain.ServiceRequest, error)
	Update(ctx context.Context, req *domain.ServiceRequest) error

	// UpdateStatus applies a transition only if the row still holds
	// expectedStatus, reporting domain.ErrConflict otherwise. This is the
	// optimistic check that serializes concurrent transitions.
	UpdateStatus(ctx context.Context, req *domain.ServiceRequest, expectedStatus domain.RequestStatus) error

	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error)

	// ListForStats returns the full (optionally user-scoped) collection for
	// dashboard aggregation. userID 0 means all users.
	ListForStats(ctx context.Context, userID int32) ([]domain.ServiceRequest, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id int32) (*domain.Document, error)
	ListByRequest(ctx context.Context, requestID int32) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id int32, status domain.DocumentStatus) error
	Delete(ctx context.Context, id int32) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	ListByRequest(ctx context.Context, requestID int32) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Payment, int32, error)
	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Payment, int32, error)
	ListOverdueCandidates(ctx context.Context) ([]domain.Payment, error)
	ListOverdue(ctx context.Context) ([]domain.Payment, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id int32) (*domain.Message, error)
	ListForUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Message, int32, error)
	ListForAdmins(ctx context.Context, page, pageSize int32) ([]domain.Message, int32, error)
	MarkAsRead(ctx context.Context, id int32) error
	CountUnread(ctx context.Context, userID int32) (int32, error)
	CountUnreadForAdmins(ctx context.Context) (int32, error)
}
