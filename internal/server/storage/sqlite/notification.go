package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/lmsdesk/internal/server/storage"
	"github.com/iudanet/lmsdesk/pkg/api"
)

// CreateNotification stores notification for student.
// Empty id and zero CreatedAt are filled in.
func (s *Storage) CreateNotification(ctx context.Context, studentID string, n *api.NotificationRecord) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	var relatedType, relatedID string
	if n.RelatedEntity != nil {
		relatedType, relatedID = n.RelatedEntity.Type, n.RelatedEntity.ID
	}

	query := `
		INSERT INTO notifications (id, student_id, title, message, action_url, related_type, related_id, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		n.ID, studentID, n.Title, n.Message, n.ActionURL, relatedType, relatedID, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListNotifications returns requested page, newest first, and total count matching the filter
func (s *Storage) ListNotifications(ctx context.Context, studentID string, filter storage.NotificationFilter) ([]api.NotificationRecord, int, error) {
	where := `WHERE student_id = ?`
	args := []any{studentID}
	if filter.IsRead != nil {
		where += ` AND is_read = ?`
		args = append(args, *filter.IsRead)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	page, limit := max(filter.Page, 1), max(filter.Limit, 1)
	query := `
		SELECT id, title, message, action_url, related_type, related_id, is_read, created_at
		FROM notifications ` + where + `
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`
	args = append(args, limit, (page-1)*limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	items := make([]api.NotificationRecord, 0, limit)
	for rows.Next() {
		var (
			n                      api.NotificationRecord
			relatedType, relatedID string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.ActionURL, &relatedType, &relatedID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		if relatedType != "" {
			n.RelatedEntity = &api.RelatedEntity{Type: relatedType, ID: relatedID}
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return items, total, nil
}

// MarkRead marks notification as read
func (s *Storage) MarkRead(ctx context.Context, studentID, notificationID string) error {
	query := `UPDATE notifications SET is_read = 1 WHERE id = ? AND student_id = ?`

	result, err := s.db.ExecContext(ctx, query, notificationID, studentID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks all unread notifications of student as read
func (s *Storage) MarkAllRead(ctx context.Context, studentID string) (int64, error) {
	query := `UPDATE notifications SET is_read = 1 WHERE student_id = ? AND is_read = 0`

	result, err := s.db.ExecContext(ctx, query, studentID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
