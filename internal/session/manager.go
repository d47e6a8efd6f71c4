package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
)

// Manager issues, resolves and destroys opaque session tokens. One user may
// hold any number of concurrent sessions.
type Manager struct {
	store    Store
	userRepo repository.UserRepository
	ttl      time.Duration
}

func NewManager(store Store, userRepo repository.UserRepository, ttl time.Duration) *Manager {
	return &Manager{
		store:    store,
		userRepo: userRepo,
		ttl:      ttl,
	}
}

// Create issues a fresh unguessable token for the given user.
func (m *Manager) Create(ctx context.Context, userID int32) (*Session, error) {
	now := time.Now()
	sess := &Session{
		Token:     uuid.NewString() + uuid.NewString(),
		UserID:    userID,
		CreatedOn: now,
		ExpiresOn: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Resolve returns the user behind a token. Expired tokens are deleted on the
// spot rather than swept by a background task, and a deactivated account
// fails resolution even while its sessions are still stored.
func (m *Manager) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if sess.Expired(time.Now()) {
		_ = m.store.Delete(ctx, token)
		return nil, domain.ErrUnauthorized
	}

	user, err := m.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		// Only a definitively missing user invalidates the session. A
		// transient lookup failure must not destroy valid sessions.
		if errors.Is(err, domain.ErrNotFound) {
			_ = m.store.Delete(ctx, token)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if !user.IsActive {
		_ = m.store.Delete(ctx, token)
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// Destroy removes a token. Destroying an absent token is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// DestroyAllForUser removes every session the user holds, used when an
// account is deactivated.
func (m *Manager) DestroyAllForUser(ctx context.Context, userID int32) error {
	return m.store.DeleteByUser(ctx, userID)
}
