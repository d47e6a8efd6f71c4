// Package workflow holds the service request lifecycle rules: which status
// follows which, and who may trigger the change.
package workflow

import (
	"autoportal-backend/internal/domain"
)

// successors maps each status to its directly reachable targets. A status
// with no entry is terminal. No transition may skip a step.
var successors = map[domain.RequestStatus][]domain.RequestStatus{
	domain.RequestStatusPending:    {domain.RequestStatusApproved, domain.RequestStatusRejected, domain.RequestStatusCancelled},
	domain.RequestStatusApproved:   {domain.RequestStatusInProgress},
	domain.RequestStatusInProgress: {domain.RequestStatusCompleted},
}

// Rules evaluates transitions against the table and an ownership policy.
type Rules struct {
	// AllowUserCancel lets the owning user move their own pending request
	// to cancelled. All other transitions are admin-only.
	AllowUserCancel bool
}

// CanTransition reports whether target directly succeeds current.
// Cancellation is only reachable when user self-cancel is enabled.
func (r Rules) CanTransition(current, target domain.RequestStatus) bool {
	if target == domain.RequestStatusCancelled && !r.AllowUserCancel {
		return false
	}
	for _, next := range successors[current] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition can leave the status.
func (r Rules) Terminal(status domain.RequestStatus) bool {
	return len(successors[status]) == 0
}

// Authorize decides whether actor may apply the transition to a request.
// Admins may drive any valid transition; the owning user may only cancel
// their own pending request, and only when self-cancel is enabled.
func (r Rules) Authorize(actor *domain.User, req *domain.ServiceRequest, target domain.RequestStatus) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if r.AllowUserCancel &&
		actor.ID == req.UserID &&
		req.Status == domain.RequestStatusPending &&
		target == domain.RequestStatusCancelled {
		return nil
	}
	return domain.ErrForbidden
}
