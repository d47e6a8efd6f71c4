package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusApproved   RequestStatus = "approved"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

type RequestPriority string

const (
	RequestPriorityStandard RequestPriority = "standard"
	RequestPriorityUrgent   RequestPriority = "urgent"
)

func (p RequestPriority) Valid() bool {
	return p == RequestPriorityStandard || p == RequestPriorityUrgent
}

type ServiceRequest struct {
	ID               int32           `json:"id"`
	RequestID        string          `json:"request_id"` // REQ-XXXXXXXX, immutable
	UserID           int32           `json:"user_id"`
	ServiceTypeID    int32           `json:"service_type_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Priority         RequestPriority `json:"priority"`
	Status           RequestStatus   `json:"status"`
	TotalAmountCents *int32          `json:"total_amount_cents,omitempty"`
	AdminNotes       string          `json:"admin_notes,omitempty"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	ApprovedOn       *time.Time      `json:"approved_on,omitempty"`
	RejectedOn       *time.Time      `json:"rejected_on,omitempty"`
	CreatedOn        time.Time       `json:"created_on"`
	UpdatedOn        time.Time       `json:"updated_on"`
}

// RequestDraft carries the user-supplied fields of a new submission.
type RequestDraft struct {
	ServiceTypeID int32           `json:"service_type_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Priority      RequestPriority `json:"priority"`
}
