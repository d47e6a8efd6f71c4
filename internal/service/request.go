package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/logger"
	"autoportal-backend/internal/repository"
	"autoportal-backend/internal/stats"
	"autoportal-backend/internal/workflow"
)

type requestService struct {
	reqRepo    repository.ServiceRequestRepository
	typeRepo   repository.ServiceTypeRepository
	docRepo    repository.DocumentRepository
	payRepo    repository.PaymentRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
	rules      workflow.Rules
	adminEmail string
}

func NewRequestService(
	reqRepo repository.ServiceRequestRepository,
	typeRepo repository.ServiceTypeRepository,
	docRepo repository.DocumentRepository,
	payRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	rules workflow.Rules,
	adminEmail string,
) RequestService {
	return &requestService{
		reqRepo:    reqRepo,
		typeRepo:   typeRepo,
		docRepo:    docRepo,
		payRepo:    payRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
		rules:      rules,
		adminEmail: adminEmail,
	}
}

const requestCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newRequestCode returns a fresh REQ- code with 8 random alphanumerics.
func newRequestCode() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	for i, b := range buf {
		buf[i] = requestCodeCharset[int(b)%len(requestCodeCharset)]
	}
	return "REQ-" + string(buf)
}

func (s *requestService) validateDraft(ctx context.Context, draft *domain.RequestDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: empty submission", domain.ErrValidation)
	}
	if strings.TrimSpace(draft.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if !draft.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, draft.Priority)
	}

	st, err := s.typeRepo.GetByID(ctx, draft.ServiceTypeID)
	if err != nil {
		return fmt.Errorf("%w: unknown service type %d", domain.ErrValidation, draft.ServiceTypeID)
	}
	if !st.IsActive {
		return fmt.Errorf("%w: service type %q is not offered", domain.ErrValidation, st.Name)
	}
	return nil
}

func (s *requestService) Submit(ctx context.Context, userID int32, draft *domain.RequestDraft) (*domain.ServiceRequest, error) {
	if err := s.validateDraft(ctx, draft); err != nil {
		return nil, err
	}

	req := &domain.ServiceRequest{
		RequestID:     newRequestCode(),
		UserID:        userID,
		ServiceTypeID: draft.ServiceTypeID,
		Title:         strings.TrimSpace(draft.Title),
		Description:   strings.TrimSpace(draft.Description),
		Priority:      draft.Priority,
		Status:        domain.RequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Notify the admin team, best effort.
	if s.adminEmail != "" {
		requester, err := s.userRepo.GetByID(ctx, userID)
		if err == nil {
			if err := s.emailSvc.SendRequestSubmitted(ctx, s.adminEmail, requester.FullName(), req.RequestID, req.Title); err != nil {
				logger.Warn("submission notification failed", "request", req.RequestID, "error", err)
			}
		}
	}

	return req, nil
}

func (s *requestService) Get(ctx context.Context, actor *domain.User, requestCode string) (*domain.ServiceRequest, []domain.Document, []domain.Payment, error) {
	req, err := s.reqRepo.GetByRequestID(ctx, requestCode)
	if err != nil {
		return nil, nil, nil, err
	}
	if actor.Role != domain.RoleAdmin && actor.ID != req.UserID {
		return nil, nil, nil, domain.ErrForbidden
	}

	docs, err := s.docRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load documents: %w", err)
	}
	payments, err := s.payRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load payments: %w", err)
	}
	return req, docs, payments, nil
}

// List shows admins every request and users only their own.
func (s *requestService) List(ctx context.Context, actor *domain.User, status string, page, pageSize int32) ([]domain.ServiceRequest, int32, error) {
	if actor.Role == domain.RoleAdmin {
		return s.reqRepo.ListAll(ctx, status, page, pageSize)
	}
	return s.reqRepo.ListByUser(ctx, actor.ID, status, page, pageSize)
}

// UpdateDraft lets the owner amend a request while it is still pending.
// Admins may amend any request regardless of status.
func (s *requestService) UpdateDraft(ctx context.Context, actor *domain.User, requestCode string, draft *domain.RequestDraft) (*domain.ServiceRequest, error) {
	req, err := s.reqRepo.GetByRequestID(ctx, requestCode)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		if actor.ID != req.UserID {
			return nil, domain.ErrForbidden
		}
		if req.Status != domain.RequestStatusPending {
			return nil, domain.ErrForbidden
		}
	}
	if err := s.validateDraft(ctx, draft); err != nil {
		return nil, err
	}

	req.ServiceTypeID = draft.ServiceTypeID
	req.Title = strings.TrimSpace(draft.Title)
	req.Description = strings.TrimSpace(draft.Description)
	req.Priority = draft.Priority
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}
	return req, nil
}

func (s *requestService) Transition(ctx context.Context, actor *domain.User, requestCode string, target domain.RequestStatus, input TransitionInput) (*domain.ServiceRequest, error) {
	req, err := s.reqRepo.GetByRequestID(ctx, requestCode)
	if err != nil {
		return nil, err
	}

	if err := s.rules.Authorize(actor, req, target); err != nil {
		return nil, err
	}
	if !s.rules.CanTransition(req.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, req.Status, target)
	}
	if target == domain.RequestStatusRejected && strings.TrimSpace(input.Reason) == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", domain.ErrValidation)
	}

	expected := req.Status
	now := time.Now()
	req.Status = target
	switch target {
	case domain.RequestStatusApproved:
		req.ApprovedOn = &now
	case domain.RequestStatusRejected:
		req.RejectionReason = strings.TrimSpace(input.Reason)
		req.RejectedOn = &now
	}
	if input.AdminNotes != "" {
		req.AdminNotes = input.AdminNotes
	}
	if input.TotalAmountCents != nil {
		req.TotalAmountCents = input.TotalAmountCents
	}

	if err := s.reqRepo.UpdateStatus(ctx, req, expected); err != nil {
		return nil, err
	}

	// Notify the owner, best effort. The transition is already committed;
	// a delivery failure is logged, never surfaced.
	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err == nil {
		if err := s.emailSvc.SendRequestStatusUpdate(ctx, owner.Email, owner.FullName(), req.RequestID, target, req.RejectionReason); err != nil {
			logger.Warn("transition notification failed", "request", req.RequestID, "status", target, "error", err)
		}
	}

	return req, nil
}

// Stats aggregates per-status counts, scoped to the actor's own requests
// unless the actor is an admin.
func (s *requestService) Stats(ctx context.Context, actor *domain.User) (stats.Summary, error) {
	var scope int32
	if actor.Role != domain.RoleAdmin {
		scope = actor.ID
	}
	requests, err := s.reqRepo.ListForStats(ctx, scope)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("failed to load requests: %w", err)
	}
	return stats.Aggregate(requests, 0), nil
}
