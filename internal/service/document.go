package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
	"autoportal-backend/internal/security"
	"autoportal-backend/internal/storage"
)

const downloadURLTTL = 15 * time.Minute

var allowedFileTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

type documentService struct {
	docRepo     repository.DocumentRepository
	reqRepo     repository.ServiceRequestRepository
	files       storage.FileStorage
	tokens      security.DownloadTokenManager
	baseURL     string
	maxFileSize int64
}

func NewDocumentService(
	docRepo repository.DocumentRepository,
	reqRepo repository.ServiceRequestRepository,
	files storage.FileStorage,
	tokens security.DownloadTokenManager,
	baseURL string,
	maxFileSizeMB int64,
) DocumentService {
	return &documentService{
		docRepo:     docRepo,
		reqRepo:     reqRepo,
		files:       files,
		tokens:      tokens,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxFileSize: maxFileSizeMB * 1024 * 1024,
	}
}

func (s *documentService) Upload(ctx context.Context, actor *domain.User, requestCode, fileName, fileType, documentType string, size int64, content io.Reader) (*domain.Document, error) {
	req, err := s.reqRepo.GetByRequestID(ctx, requestCode)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && actor.ID != req.UserID {
		return nil, domain.ErrForbidden
	}

	if fileName == "" || documentType == "" {
		return nil, fmt.Errorf("%w: file name and document type are required", domain.ErrValidation)
	}
	if !allowedFileTypes[fileType] {
		return nil, fmt.Errorf("%w: unsupported file type %q", domain.ErrValidation, fileType)
	}
	if size <= 0 || size > s.maxFileSize {
		return nil, fmt.Errorf("%w: file size %d outside limits", domain.ErrValidation, size)
	}

	key := fmt.Sprintf("requests/%s/%s%s", req.RequestID, uuid.NewString(), path.Ext(fileName))
	if err := s.files.Save(ctx, key, io.LimitReader(content, s.maxFileSize)); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := &domain.Document{
		RequestID:    req.ID,
		UploadedBy:   actor.ID,
		FileName:     fileName,
		FileType:     fileType,
		FileSize:     size,
		DocumentType: documentType,
		StorageKey:   key,
		Status:       domain.DocumentStatusPending,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		_ = s.files.Delete(ctx, key)
		return nil, fmt.Errorf("failed to record document: %w", err)
	}
	return doc, nil
}

// Review verifies or rejects an uploaded document. Admin only.
func (s *documentService) Review(ctx context.Context, actor *domain.User, documentID int32, verdict domain.DocumentStatus) (*domain.Document, error) {
	if err := security.Authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if verdict != domain.DocumentStatusVerified && verdict != domain.DocumentStatusRejected {
		return nil, fmt.Errorf("%w: verdict must be verified or rejected", domain.ErrValidation)
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.docRepo.UpdateStatus(ctx, documentID, verdict); err != nil {
		return nil, err
	}
	doc.Status = verdict
	return doc, nil
}

// DownloadURL hands out a short-lived signed link the owner or an admin can
// open without presenting the session cookie.
func (s *documentService) DownloadURL(ctx context.Context, actor *domain.User, documentID int32) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}

	req, err := s.reqRepo.GetByID(ctx, doc.RequestID)
	if err != nil {
		return "", fmt.Errorf("failed to load owning request: %w", err)
	}
	if actor.Role != domain.RoleAdmin && actor.ID != req.UserID {
		return "", domain.ErrForbidden
	}

	token, err := s.tokens.Generate(doc.ID, actor.ID, downloadURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign download token: %w", err)
	}
	return fmt.Sprintf("%s/api/v1/documents/download?token=%s", s.baseURL, token), nil
}

// Open validates a signed download token and opens the underlying file.
func (s *documentService) Open(ctx context.Context, downloadToken string) (*domain.Document, io.ReadCloser, error) {
	claims, err := s.tokens.Validate(downloadToken)
	if err != nil {
		return nil, nil, domain.ErrUnauthorized
	}

	doc, err := s.docRepo.GetByID(ctx, claims.DocumentID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.files.Read(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return doc, rc, nil
}
