package domain

import "errors"

// Error kinds surfaced by the portal core. All are terminal from the caller's
// point of view: they describe bad input or insufficient rights, never a
// transient infrastructure condition, so nothing here is retried.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("missing, expired or invalid session")
	ErrForbidden          = errors.New("insufficient role or ownership")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("status transition not permitted")
	ErrConflict           = errors.New("concurrent update conflict")
)
