package service

import (
	"context"
	"io"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/stats"
)

type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, session token
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// TransitionInput carries the admin-supplied fields of a status change.
type TransitionInput struct {
	Reason           string
	AdminNotes       string
	TotalAmountCents *int32
}

type RequestService interface {
	Submit(ctx context.Context, userID int32, draft *domain.RequestDraft) (*domain.ServiceRequest, error)
	Get(ctx context.Context, actor *domain.User, requestCode string) (*domain.ServiceRequest, []domain.Document, []domain.Payment, error)
	List(ctx context.Context, actor *domain.User, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error)
	UpdateDraft(ctx context.Context, actor *domain.User, requestCode string, draft *domain.RequestDraft) (*domain.ServiceRequest, error)
	Transition(ctx context.Context, actor *domain.User, requestCode string, target domain.RequestStatus, input TransitionInput) (*domain.ServiceRequest, error)
	Stats(ctx context.Context, actor *domain.User) (stats.Summary, error)
}

type DocumentService interface {
	Upload(ctx context.Context, actor *domain.User, requestCode, fileName, fileType, documentType string, size int64, content io.Reader) (*domain.Document, error)
	Review(ctx context.Context, actor *domain.User, documentID int32, verdict domain.DocumentStatus) (*domain.Document, error)
	DownloadURL(ctx context.Context, actor *domain.User, documentID int32) (string, error)
	Open(ctx context.Context, downloadToken string) (*domain.Document, io.ReadCloser, error)
}

type PaymentService interface {
	CreateInvoice(ctx context.Context, actor *domain.User, requestCode string, amountCents int32, dueOn time.Time) (*domain.Payment, error)
	Pay(ctx context.Context, actor *domain.User, paymentID, method string) (*domain.Payment, error)
	Cancel(ctx context.Context, actor *domain.User, paymentID string) (*domain.Payment, error)
	List(ctx context.Context, actor *domain.User, status string, page, pageSize int32) ([]domain.Payment, int32, error)
}

type MessageService interface {
	Send(ctx context.Context, actor *domain.User, toUserID, requestID *int32, content string) (*domain.Message, error)
	List(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.Message, int32, error)
	MarkAsRead(ctx context.Context, actor *domain.User, messageID int32) error
	UnreadCount(ctx context.Context, actor *domain.User) (int32, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	SetUserActive(ctx context.Context, userID int32, active bool) error
	SetUserRole(ctx context.Context, userID int32, role domain.Role) error
	CreateServiceType(ctx context.Context, st *domain.ServiceType) error
	UpdateServiceType(ctx context.Context, st *domain.ServiceType) error
	ListServiceTypes(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error)
}

type EmailService interface {
	SendRequestSubmitted(ctx context.Context, adminEmail, requesterName, requestCode, title string) error
	SendRequestStatusUpdate(ctx context.Context, email, name, requestCode string, status domain.RequestStatus, reason string) error
	SendInvoiceIssued(ctx context.Context, email, name, requestCode string, amountCents int32, dueOn time.Time) error
	SendPaymentReceipt(ctx context.Context, email, name, paymentID string, amountCents int32) error
	SendPaymentReminder(ctx context.Context, email, name, paymentID string, amountCents int32) error
}

// PaymentGateway is the port to the external payment processor. The portal
// charges through it only after a request has been approved.
type PaymentGateway interface {
	Charge(ctx context.Context, paymentID string, amountCents int32, method string) (transactionID string, err error)
}
