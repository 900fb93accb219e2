package storage

import (
	"context"

	"github.com/iudanet/lmsdesk/pkg/api"
)

// NotificationFilter выбирает страницу уведомлений студента
type NotificationFilter struct {
	IsRead *bool // nil - все уведомления
	Page   int   // с 1
	Limit  int
}

// NotificationStorage defines interface for student notifications
type NotificationStorage interface {
	// CreateNotification stores notification for student
	CreateNotification(ctx context.Context, studentID string, n *api.NotificationRecord) error

	// ListNotifications returns requested page, newest first, and total count matching the filter
	ListNotifications(ctx context.Context, studentID string, filter NotificationFilter) ([]api.NotificationRecord, int, error)

	// MarkRead marks notification as read. Marking twice is not an error.
	// Returns ErrNotificationNotFound if notification doesn't belong to student
	MarkRead(ctx context.Context, studentID, notificationID string) error

	// MarkAllRead marks all unread notifications as read and returns how many were changed
	MarkAllRead(ctx context.Context, studentID string) (int64, error)
}
