package service_test

import (
	"context"
	"testing"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type messageFixture struct {
	msgRepo  *MockMessageRepo
	userRepo *MockUserRepo
	reqRepo  *MockRequestRepo
	svc      service.MessageService
}

func newMessageFixture() *messageFixture {
	f := &messageFixture{
		msgRepo:  new(MockMessageRepo),
		userRepo: new(MockUserRepo),
		reqRepo:  new(MockRequestRepo),
	}
	f.svc = service.NewMessageService(f.msgRepo, f.userRepo, f.reqRepo)
	return f
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("User To Admin Team", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)

		m, err := f.svc.Send(ctx, testOwner, nil, nil, "When will my car be ready?")
		assert.NoError(t, err)
		assert.Nil(t, m.ToUserID)
		assert.Equal(t, testOwner.ID, m.FromUserID)
		assert.Equal(t, domain.MessageTypeGeneral, m.Type)
	})

	t.Run("User To Admin User", func(t *testing.T) {
		f := newMessageFixture()
		f.userRepo.On("GetByID", ctx, testAdmin.ID).Return(testAdmin, nil)
		f.msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)

		m, err := f.svc.Send(ctx, testOwner, &testAdmin.ID, nil, "hello")
		assert.NoError(t, err)
		assert.Equal(t, testAdmin.ID, *m.ToUserID)
	})

	t.Run("User To User Forbidden", func(t *testing.T) {
		f := newMessageFixture()
		f.userRepo.On("GetByID", ctx, testOther.ID).Return(testOther, nil)

		_, err := f.svc.Send(ctx, testOwner, &testOther.ID, nil, "hi")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Admin To User", func(t *testing.T) {
		f := newMessageFixture()
		f.userRepo.On("GetByID", ctx, testOwner.ID).Return(testOwner, nil)
		f.msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)

		_, err := f.svc.Send(ctx, testAdmin, &testOwner.ID, nil, "your car is ready")
		assert.NoError(t, err)
	})

	t.Run("Linked Request Must Be Own", func(t *testing.T) {
		f := newMessageFixture()
		reqID := int32(10)
		f.reqRepo.On("GetByID", ctx, reqID).Return(&domain.ServiceRequest{ID: 10, UserID: testOwner.ID}, nil)

		_, err := f.svc.Send(ctx, testOther, nil, &reqID, "about this request")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Linked Request Sets Type", func(t *testing.T) {
		f := newMessageFixture()
		reqID := int32(10)
		f.reqRepo.On("GetByID", ctx, reqID).Return(&domain.ServiceRequest{ID: 10, UserID: testOwner.ID}, nil)
		f.msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)

		m, err := f.svc.Send(ctx, testOwner, nil, &reqID, "brake pads question")
		assert.NoError(t, err)
		assert.Equal(t, domain.MessageTypeRequest, m.Type)
	})

	t.Run("Empty Content", func(t *testing.T) {
		f := newMessageFixture()
		_, err := f.svc.Send(ctx, testOwner, nil, nil, "   ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestMessageService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin Sees Shared Inbox", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("ListForAdmins", ctx, int32(1), int32(20)).Return([]domain.Message{{ID: 1}}, int32(1), nil)

		items, total, err := f.svc.List(ctx, testAdmin, 1, 20)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int32(1), total)
	})

	t.Run("User Sees Own Conversations", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("ListForUser", ctx, testOwner.ID, int32(1), int32(20)).Return([]domain.Message{}, int32(0), nil)

		_, _, err := f.svc.List(ctx, testOwner, 1, 20)
		assert.NoError(t, err)
	})
}

func TestMessageService_UnreadCount(t *testing.T) {
	ctx := context.Background()

	t.Run("User Counts Own Only", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("CountUnread", ctx, testOwner.ID).Return(int32(2), nil)

		count, err := f.svc.UnreadCount(ctx, testOwner)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), count)
		f.msgRepo.AssertNotCalled(t, "CountUnreadForAdmins", ctx)
	})

	t.Run("Admin Includes Shared Inbox", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("CountUnread", ctx, testAdmin.ID).Return(int32(1), nil)
		f.msgRepo.On("CountUnreadForAdmins", ctx).Return(int32(3), nil)

		count, err := f.svc.UnreadCount(ctx, testAdmin)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), count)
	})
}

func TestMessageService_MarkAsRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Recipient Marks Read", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("GetByID", ctx, int32(5)).Return(&domain.Message{ID: 5, ToUserID: &testOwner.ID}, nil)
		f.msgRepo.On("MarkAsRead", ctx, int32(5)).Return(nil)

		assert.NoError(t, f.svc.MarkAsRead(ctx, testOwner, 5))
	})

	t.Run("Non Recipient Forbidden", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("GetByID", ctx, int32(5)).Return(&domain.Message{ID: 5, ToUserID: &testOwner.ID}, nil)

		err := f.svc.MarkAsRead(ctx, testOther, 5)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Admin Covers Shared Inbox", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("GetByID", ctx, int32(5)).Return(&domain.Message{ID: 5}, nil)
		f.msgRepo.On("MarkAsRead", ctx, int32(5)).Return(nil)

		assert.NoError(t, f.svc.MarkAsRead(ctx, testAdmin, 5))
	})

	t.Run("User Cannot Mark Shared Inbox", func(t *testing.T) {
		f := newMessageFixture()
		f.msgRepo.On("GetByID", ctx, int32(5)).Return(&domain.Message{ID: 5}, nil)

		err := f.svc.MarkAsRead(ctx, testOwner, 5)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
