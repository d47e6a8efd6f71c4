// Package stats derives per-status request counts for dashboards.
package stats

import (
	"autoportal-backend/internal/domain"
)

type Summary struct {
	Pending    int32 `json:"pending"`
	Approved   int32 `json:"approved"`
	InProgress int32 `json:"in_progress"`
	Completed  int32 `json:"completed"`
	Rejected   int32 `json:"rejected"`
	Cancelled  int32 `json:"cancelled"`
	Total      int32 `json:"total"`
}

// Aggregate folds the collection into per-status counts. When scopeUserID is
// non-zero only that user's requests are counted. Total always equals the
// number of requests counted.
func Aggregate(requests []domain.ServiceRequest, scopeUserID int32) Summary {
	var s Summary
	for _, req := range requests {
		if scopeUserID != 0 && req.UserID != scopeUserID {
			continue
		}
		switch req.Status {
		case domain.RequestStatusPending:
			s.Pending++
		case domain.RequestStatusApproved:
			s.Approved++
		case domain.RequestStatusInProgress:
			s.InProgress++
		case domain.RequestStatusCompleted:
			s.Completed++
		case domain.RequestStatusRejected:
			s.Rejected++
		case domain.RequestStatusCancelled:
			s.Cancelled++
		}
		s.Total++
	}
	return s
}
