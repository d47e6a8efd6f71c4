package session

import (
	"context"
	"time"
)

// Session binds an opaque token to a user for a bounded time. Clients only
// ever hold the token string; the record itself never leaves this package.
type Session struct {
	Token     string    `json:"token"`
	UserID    int32     `json:"user_id"`
	CreatedOn time.Time `json:"created_on"`
	ExpiresOn time.Time `json:"expires_on"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresOn)
}

// Store is the backing store for issued sessions. The memory implementation
// serves tests and single-instance deployments; the Redis implementation
// serves multi-instance deployments.
type Store interface {
	Save(ctx context.Context, s *Session) error
	// Get returns the session for token, or domain.ErrUnauthorized if absent.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete is idempotent. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
	// DeleteByUser removes every session held by one user.
	DeleteByUser(ctx context.Context, userID int32) error
}
