package domain

import "time"

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
)

type Document struct {
	ID           int32          `json:"id"`
	RequestID    int32          `json:"request_id"`
	UploadedBy   int32          `json:"uploaded_by"`
	FileName     string         `json:"file_name"`
	FileType     string         `json:"file_type"`
	FileSize     int64          `json:"file_size"`
	DocumentType string         `json:"document_type"` // e.g. registration, insurance, inspection_report
	StorageKey   string         `json:"-"`
	Status       DocumentStatus `json:"status"`
	CreatedOn    time.Time      `json:"created_on"`
}
