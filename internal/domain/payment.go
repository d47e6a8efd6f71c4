package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type Payment struct {
	ID            int32         `json:"id"`
	PaymentID     string        `json:"payment_id"` // PAY-XXXXXXXX, immutable
	RequestID     int32         `json:"request_id"`
	UserID        int32         `json:"user_id"`
	AmountCents   int32         `json:"amount_cents"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	DueOn         time.Time     `json:"due_on"`
	ProcessedOn   *time.Time    `json:"processed_on,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
}
