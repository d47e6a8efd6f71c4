package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/logger"
	"autoportal-backend/internal/repository"
	"autoportal-backend/internal/security"
)

type paymentService struct {
	payRepo  repository.PaymentRepository
	reqRepo  repository.ServiceRequestRepository
	userRepo repository.UserRepository
	gateway  PaymentGateway
	emailSvc EmailService
}

func NewPaymentService(
	payRepo repository.PaymentRepository,
	reqRepo repository.ServiceRequestRepository,
	userRepo repository.UserRepository,
	gateway PaymentGateway,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		payRepo:  payRepo,
		reqRepo:  reqRepo,
		userRepo: userRepo,
		gateway:  gateway,
		emailSvc: emailSvc,
	}
}

const paymentCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newPaymentCode() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	for i, b := range buf {
		buf[i] = paymentCodeCharset[int(b)%len(paymentCodeCharset)]
	}
	return "PAY-" + string(buf)
}

// CreateInvoice raises an invoice against a request. Admin only, and only
// once the request has left pending through approval.
func (s *paymentService) CreateInvoice(ctx context.Context, actor *domain.User, requestCode string, amountCents int32, dueOn time.Time) (*domain.Payment, error) {
	if err := security.Authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	req, err := s.reqRepo.GetByRequestID(ctx, requestCode)
	if err != nil {
		return nil, err
	}
	switch req.Status {
	case domain.RequestStatusApproved, domain.RequestStatusInProgress, domain.RequestStatusCompleted:
	default:
		return nil, fmt.Errorf("%w: request %s has not been approved", domain.ErrValidation, req.RequestID)
	}

	if dueOn.IsZero() {
		dueOn = time.Now().Add(14 * 24 * time.Hour)
	}

	p := &domain.Payment{
		PaymentID:   newPaymentCode(),
		RequestID:   req.ID,
		UserID:      req.UserID,
		AmountCents: amountCents,
		Status:      domain.PaymentStatusPending,
		DueOn:       dueOn,
	}
	if err := s.payRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err == nil {
		if err := s.emailSvc.SendInvoiceIssued(ctx, owner.Email, owner.FullName(), req.RequestID, amountCents, dueOn); err != nil {
			logger.Warn("invoice notification failed", "payment", p.PaymentID, "error", err)
		}
	}

	return p, nil
}

// Pay charges an invoice through the gateway. Only the invoiced user may pay,
// and only while the invoice is pending or overdue.
func (s *paymentService) Pay(ctx context.Context, actor *domain.User, paymentID, method string) (*domain.Payment, error) {
	p, err := s.payRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && actor.ID != p.UserID {
		return nil, domain.ErrForbidden
	}
	if p.Status != domain.PaymentStatusPending && p.Status != domain.PaymentStatusOverdue {
		return nil, fmt.Errorf("%w: invoice %s is %s", domain.ErrValidation, p.PaymentID, p.Status)
	}
	if method == "" {
		return nil, fmt.Errorf("%w: payment method is required", domain.ErrValidation)
	}

	txID, err := s.gateway.Charge(ctx, p.PaymentID, p.AmountCents, method)
	if err != nil {
		return nil, fmt.Errorf("payment gateway declined: %w", err)
	}

	now := time.Now()
	p.Status = domain.PaymentStatusPaid
	p.PaymentMethod = method
	p.TransactionID = txID
	p.ProcessedOn = &now
	if err := s.payRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	payer, err := s.userRepo.GetByID(ctx, p.UserID)
	if err == nil {
		if err := s.emailSvc.SendPaymentReceipt(ctx, payer.Email, payer.FullName(), p.PaymentID, p.AmountCents); err != nil {
			logger.Warn("receipt notification failed", "payment", p.PaymentID, "error", err)
		}
	}

	return p, nil
}

// Cancel voids an unpaid invoice. Admin only.
func (s *paymentService) Cancel(ctx context.Context, actor *domain.User, paymentID string) (*domain.Payment, error) {
	if err := security.Authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	p, err := s.payRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: invoice %s is already paid", domain.ErrValidation, p.PaymentID)
	}

	p.Status = domain.PaymentStatusCancelled
	if err := s.payRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to cancel invoice: %w", err)
	}
	return p, nil
}

func (s *paymentService) List(ctx context.Context, actor *domain.User, status string, page, pageSize int32) ([]domain.Payment, int32, error) {
	if actor.Role == domain.RoleAdmin {
		return s.payRepo.ListAll(ctx, status, page, pageSize)
	}
	return s.payRepo.ListByUser(ctx, actor.ID, status, page, pageSize)
}
