package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

const messageColumns = `id, from_user_id, to_user_id, request_id, content, is_read, message_type, created_on`

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (from_user_id, to_user_id, request_id, content, is_read, message_type, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	m.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, m.FromUserID, m.ToUserID, m.RequestID, m.Content, m.IsRead, m.Type, m.CreatedOn).Scan(&m.ID)
}

func (r *messageRepository) GetByID(ctx context.Context, id int32) (*domain.Message, error) {
	m := &domain.Message{}
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.RequestID, &m.Content, &m.IsRead, &m.Type, &m.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *messageRepository) ListForUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Message, int32, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE to_user_id = $1 OR from_user_id = $1`
	return r.listPaged(ctx, query, []interface{}{userID}, page, pageSize)
}

// ListForAdmins returns messages addressed to the admin team (no explicit recipient).
func (r *messageRepository) ListForAdmins(ctx context.Context, page, pageSize int32) ([]domain.Message, int32, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE to_user_id IS NULL`
	return r.listPaged(ctx, query, nil, page, pageSize)
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE messages SET is_read=true WHERE id=$1`, id)
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

func (r *messageRepository) CountUnread(ctx context.Context, userID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM messages WHERE to_user_id = $1 AND is_read = false`, userID).Scan(&count)
	return count, err
}

// CountUnreadForAdmins counts unread messages addressed to the admin team.
func (r *messageRepository) CountUnreadForAdmins(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM messages WHERE to_user_id IS NULL AND is_read = false`).Scan(&count)
	return count, err
}

func (r *messageRepository) listPaged(ctx context.Context, query string, args []interface{}, page, pageSize int32) ([]domain.Message, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM (` + query + `) AS sub`
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.RequestID, &m.Content, &m.IsRead, &m.Type, &m.CreatedOn); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, count, rows.Err()
}
