package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *mockUserRepo) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *mockUserRepo) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}
func (m *mockUserRepo) SetRole(ctx context.Context, id int32, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func TestManager_CreateAndResolve(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mockUserRepo)
	mgr := session.NewManager(session.NewMemoryStore(), userRepo, time.Hour)

	user := &domain.User{ID: 1, Email: "a@b.com", IsActive: true}
	userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)

	sess, err := mgr.Create(ctx, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.Token)

	got, err := mgr.Resolve(ctx, sess.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestManager_Resolve_UnknownToken(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(session.NewMemoryStore(), new(mockUserRepo), time.Hour)

	_, err := mgr.Resolve(ctx, "no-such-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Resolve_EmptyToken(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(session.NewMemoryStore(), new(mockUserRepo), time.Hour)

	_, err := mgr.Resolve(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Resolve_Expired(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	userRepo := new(mockUserRepo)
	mgr := session.NewManager(store, userRepo, -time.Minute)

	sess, err := mgr.Create(ctx, 1)
	assert.NoError(t, err)

	_, err = mgr.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// expired session is deleted on first resolution
	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	userRepo.AssertNotCalled(t, "GetByID", ctx, int32(1))
}

func TestManager_Resolve_UnknownUser(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	userRepo := new(mockUserRepo)
	mgr := session.NewManager(store, userRepo, time.Hour)

	userRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrNotFound)

	sess, err := mgr.Create(ctx, 9)
	assert.NoError(t, err)

	_, err = mgr.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// a session for a deleted account is dropped for good
	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Resolve_TransientLookupFailure(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	userRepo := new(mockUserRepo)
	mgr := session.NewManager(store, userRepo, time.Hour)

	user := &domain.User{ID: 1, Email: "a@b.com", IsActive: true}
	userRepo.On("GetByID", ctx, int32(1)).Return(nil, errors.New("db connection refused")).Once()
	userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)

	sess, err := mgr.Create(ctx, 1)
	assert.NoError(t, err)

	// a repo outage surfaces as an internal error, not an auth failure
	_, err = mgr.Resolve(ctx, sess.Token)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)

	// the session is kept, so resolution succeeds once the repo recovers
	got, err := mgr.Resolve(ctx, sess.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestManager_Resolve_DeactivatedUser(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	userRepo := new(mockUserRepo)
	mgr := session.NewManager(store, userRepo, time.Hour)

	userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, IsActive: false}, nil)

	sess, err := mgr.Create(ctx, 2)
	assert.NoError(t, err)

	_, err = mgr.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// session is dropped so the token cannot come back after reactivation
	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManager_Destroy(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mockUserRepo)
	mgr := session.NewManager(session.NewMemoryStore(), userRepo, time.Hour)

	sess, err := mgr.Create(ctx, 1)
	assert.NoError(t, err)

	assert.NoError(t, mgr.Destroy(ctx, sess.Token))
	_, err = mgr.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// destroying twice is not an error
	assert.NoError(t, mgr.Destroy(ctx, sess.Token))
}

func TestManager_DestroyAllForUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mockUserRepo)
	mgr := session.NewManager(session.NewMemoryStore(), userRepo, time.Hour)

	userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, IsActive: true}, nil)

	s1, _ := mgr.Create(ctx, 1)
	s2, _ := mgr.Create(ctx, 1)
	other, _ := mgr.Create(ctx, 2)

	assert.NoError(t, mgr.DestroyAllForUser(ctx, 1))

	_, err := mgr.Resolve(ctx, s1.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = mgr.Resolve(ctx, s2.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := mgr.Resolve(ctx, other.Token)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), got.ID)
}

func TestManager_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(session.NewMemoryStore(), new(mockUserRepo), time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sess, err := mgr.Create(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, seen[sess.Token], "token reuse")
		seen[sess.Token] = true
	}
}
