package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	query := `INSERT INTO documents (request_id, uploaded_by, file_name, file_type, file_size, document_type, storage_key, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	doc.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, doc.RequestID, doc.UploadedBy, doc.FileName, doc.FileType, doc.FileSize,
		doc.DocumentType, doc.StorageKey, doc.Status, doc.CreatedOn).Scan(&doc.ID)
}

func (r *documentRepository) GetByID(ctx context.Context, id int32) (*domain.Document, error) {
	doc := &domain.Document{}
	query := `SELECT id, request_id, uploaded_by, file_name, file_type, file_size, document_type, storage_key, status, created_on
	          FROM documents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&doc.ID, &doc.RequestID, &doc.UploadedBy, &doc.FileName, &doc.FileType,
		&doc.FileSize, &doc.DocumentType, &doc.StorageKey, &doc.Status, &doc.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *documentRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.Document, error) {
	query := `SELECT id, request_id, uploaded_by, file_name, file_type, file_size, document_type, storage_key, status, created_on
	          FROM documents WHERE request_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.RequestID, &doc.UploadedBy, &doc.FileName, &doc.FileType,
			&doc.FileSize, &doc.DocumentType, &doc.StorageKey, &doc.Status, &doc.CreatedOn); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *documentRepository) UpdateStatus(ctx context.Context, id int32, status domain.DocumentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE documents SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
