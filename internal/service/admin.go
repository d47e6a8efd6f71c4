package service

import (
	"context"
	"fmt"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
	"autoportal-backend/internal/session"
)

type adminService struct {
	userRepo repository.UserRepository
	typeRepo repository.ServiceTypeRepository
	sessions *session.Manager
}

func NewAdminService(
	userRepo repository.UserRepository,
	typeRepo repository.ServiceTypeRepository,
	sessions *session.Manager,
) AdminService {
	return &adminService{
		userRepo: userRepo,
		typeRepo: typeRepo,
		sessions: sessions,
	}
}

func (s *adminService) ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	return s.userRepo.List(ctx, page, pageSize)
}

// SetUserActive toggles an account. Deactivation destroys every session the
// user holds, so the account is locked out immediately rather than at next
// session expiry.
func (s *adminService) SetUserActive(ctx context.Context, userID int32, active bool) error {
	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return err
	}
	if !active {
		if err := s.sessions.DestroyAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("account deactivated but session cleanup failed: %w", err)
		}
	}
	return nil
}

func (s *adminService) SetUserRole(ctx context.Context, userID int32, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	return s.userRepo.SetRole(ctx, userID, role)
}

func (s *adminService) CreateServiceType(ctx context.Context, st *domain.ServiceType) error {
	if st.Name == "" {
		return fmt.Errorf("%w: service type name is required", domain.ErrValidation)
	}
	if st.BasePriceCents < 0 {
		return fmt.Errorf("%w: base price cannot be negative", domain.ErrValidation)
	}
	return s.typeRepo.Create(ctx, st)
}

func (s *adminService) UpdateServiceType(ctx context.Context, st *domain.ServiceType) error {
	if st.Name == "" {
		return fmt.Errorf("%w: service type name is required", domain.ErrValidation)
	}
	return s.typeRepo.Update(ctx, st)
}

func (s *adminService) ListServiceTypes(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error) {
	return s.typeRepo.List(ctx, activeOnly)
}
