package security

import (
	"autoportal-backend/internal/domain"
)

// Authorize reports whether the user's role is in the required set. An empty
// set means any authenticated user passes. There is no role hierarchy: admin
// does not satisfy a user-only check unless listed explicitly.
func Authorize(user *domain.User, roles ...domain.Role) error {
	if user == nil {
		return domain.ErrUnauthorized
	}
	if len(roles) == 0 {
		return nil
	}
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}
