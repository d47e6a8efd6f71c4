package service_test

import (
	"context"
	"time"

	"autoportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}
func (m *MockUserRepo) SetRole(ctx context.Context, id int32, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

// MockServiceTypeRepo
type MockServiceTypeRepo struct {
	mock.Mock
}

func (m *MockServiceTypeRepo) Create(ctx context.Context, st *domain.ServiceType) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}
func (m *MockServiceTypeRepo) GetByID(ctx context.Context, id int32) (*domain.ServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}
func (m *MockServiceTypeRepo) List(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.ServiceType), args.Error(1)
}
func (m *MockServiceTypeRepo) Update(ctx context.Context, st *domain.ServiceType) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.ServiceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRequest), args.Error(1)
}
func (m *MockRequestRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRequest), args.Error(1)
}
func (m *MockRequestRepo) Update(ctx context.Context, req *domain.ServiceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, req *domain.ServiceRequest, expectedStatus domain.RequestStatus) error {
	args := m.Called(ctx, req, expectedStatus)
	return args.Error(0)
}
func (m *MockRequestRepo) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.ServiceRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockRequestRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.ServiceRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockRequestRepo) ListForStats(ctx context.Context, userID int32) ([]domain.ServiceRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ServiceRequest), args.Error(1)
}

// MockDocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id int32) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Document, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) UpdateStatus(ctx context.Context, id int32, status domain.DocumentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockDocumentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}
func (m *MockPaymentRepo) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}
func (m *MockPaymentRepo) ListOverdueCandidates(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListOverdue(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) GetByID(ctx context.Context, id int32) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}
func (m *MockMessageRepo) ListForUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Message, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Message), args.Get(1).(int32), args.Error(2)
}
func (m *MockMessageRepo) ListForAdmins(ctx context.Context, page, pageSize int32) ([]domain.Message, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Message), args.Get(1).(int32), args.Error(2)
}
func (m *MockMessageRepo) MarkAsRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMessageRepo) CountUnread(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockMessageRepo) CountUnreadForAdmins(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestSubmitted(ctx context.Context, adminEmail, requesterName, requestCode, title string) error {
	args := m.Called(ctx, adminEmail, requesterName, requestCode, title)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestStatusUpdate(ctx context.Context, email, name, requestCode string, status domain.RequestStatus, reason string) error {
	args := m.Called(ctx, email, name, requestCode, status, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendInvoiceIssued(ctx context.Context, email, name, requestCode string, amountCents int32, dueOn time.Time) error {
	args := m.Called(ctx, email, name, requestCode, amountCents, dueOn)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, email, name, paymentID string, amountCents int32) error {
	args := m.Called(ctx, email, name, paymentID, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReminder(ctx context.Context, email, name, paymentID string, amountCents int32) error {
	args := m.Called(ctx, email, name, paymentID, amountCents)
	return args.Error(0)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Charge(ctx context.Context, paymentID string, amountCents int32, method string) (string, error) {
	args := m.Called(ctx, paymentID, amountCents, method)
	return args.String(0), args.Error(1)
}
