package service

import (
	"context"
	"fmt"
	"strings"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
)

type messageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	reqRepo  repository.ServiceRequestRepository
}

func NewMessageService(
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	reqRepo repository.ServiceRequestRepository,
) MessageService {
	return &messageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
		reqRepo:  reqRepo,
	}
}

// Send delivers a message. A nil recipient addresses the admin team, which
// only regular users may do; users may otherwise only write to admins.
func (s *messageService) Send(ctx context.Context, actor *domain.User, toUserID, requestID *int32, content string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content is required", domain.ErrValidation)
	}

	msgType := domain.MessageTypeGeneral
	if requestID != nil {
		req, err := s.reqRepo.GetByID(ctx, *requestID)
		if err != nil {
			return nil, err
		}
		if actor.Role != domain.RoleAdmin && actor.ID != req.UserID {
			return nil, domain.ErrForbidden
		}
		msgType = domain.MessageTypeRequest
	}

	if toUserID != nil {
		recipient, err := s.userRepo.GetByID(ctx, *toUserID)
		if err != nil {
			return nil, err
		}
		if actor.Role != domain.RoleAdmin && recipient.Role != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
	}

	m := &domain.Message{
		FromUserID: actor.ID,
		ToUserID:   toUserID,
		RequestID:  requestID,
		Content:    strings.TrimSpace(content),
		Type:       msgType,
	}
	if err := s.msgRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return m, nil
}

// List returns the actor's conversations; admins also see the shared
// admin-team inbox.
func (s *messageService) List(ctx context.Context, actor *domain.User, page, pageSize int32) ([]domain.Message, int32, error) {
	if actor.Role == domain.RoleAdmin {
		return s.msgRepo.ListForAdmins(ctx, page, pageSize)
	}
	return s.msgRepo.ListForUser(ctx, actor.ID, page, pageSize)
}

func (s *messageService) MarkAsRead(ctx context.Context, actor *domain.User, messageID int32) error {
	m, err := s.msgRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	// Only the recipient may mark a message read; admins cover the
	// shared inbox.
	if m.ToUserID != nil {
		if *m.ToUserID != actor.ID {
			return domain.ErrForbidden
		}
	} else if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	return s.msgRepo.MarkAsRead(ctx, messageID)
}

func (s *messageService) UnreadCount(ctx context.Context, actor *domain.User) (int32, error) {
	count, err := s.msgRepo.CountUnread(ctx, actor.ID)
	if err != nil {
		return 0, err
	}

	// Admins also watch the shared inbox, matching what List shows them.
	if actor.Role == domain.RoleAdmin {
		shared, err := s.msgRepo.CountUnreadForAdmins(ctx)
		if err != nil {
			return 0, err
		}
		count += shared
	}

	return count, nil
}
