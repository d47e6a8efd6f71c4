package http

import (
	"context"
	"net/http"
	"strings"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/security"
	"autoportal-backend/internal/session"
)

type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "session_token"
)

// extractToken reads the session token from the configured cookie, falling
// back to a bearer header for non-browser clients.
func extractToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Authenticate resolves the session token and attaches the user to the
// request context. Requests without a resolvable session are rejected.
func Authenticate(sessions *session.Manager, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			user, err := sessions.Resolve(r.Context(), token)
			if err != nil {
				respondError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a subtree on the authorization predicate. Called with no
// roles it admits any authenticated user.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok {
				respondError(w, domain.ErrUnauthorized)
				return
			}
			if err := security.Authorize(user, roles...); err != nil {
				respondError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom returns the authenticated user attached by Authenticate.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	return u, ok
}

// TokenFrom returns the raw session token attached by Authenticate.
func TokenFrom(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok
}
