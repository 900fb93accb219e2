package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/lmsdesk/internal/server/storage"
	"github.com/iudanet/lmsdesk/pkg/api"
)

// Параметры страницы уведомлений
const (
	DefaultNotificationLimit = 10
	MaxNotificationLimit     = 100
)

// NotificationHandler обрабатывает уведомления студента. Все маршруты за AuthMiddleware.
type NotificationHandler struct {
	responder
	notifications storage.NotificationStorage
}

// NewNotificationHandler создает handler уведомлений
func NewNotificationHandler(logger *slog.Logger, notifications storage.NotificationStorage) *NotificationHandler {
	return &NotificationHandler{
		responder:     newResponder(logger),
		notifications: notifications,
	}
}

// List обрабатывает GET /api/v1/notifications?page=&limit=&isRead=
// pagination.total - число уведомлений под фильтром, а не длина страницы
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID, ok := GetStudentID(ctx)
	if !ok {
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter, err := parseNotificationFilter(r)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, total, err := h.notifications.ListNotifications(ctx, studentID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notifications", slog.Any("error", err))
		h.sendError(w, "Failed to fetch notifications", http.StatusInternalServerError)
		return
	}

	h.sendData(w, items, &api.Pagination{Total: total, Page: filter.Page, Limit: filter.Limit}, "", http.StatusOK)
}

func parseNotificationFilter(r *http.Request) (storage.NotificationFilter, error) {
	q := r.URL.Query()
	filter := storage.NotificationFilter{Page: 1, Limit: DefaultNotificationLimit}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return filter, fmt.Errorf("invalid page %q", v)
		}
		filter.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return filter, fmt.Errorf("invalid limit %q", v)
		}
		filter.Limit = min(limit, MaxNotificationLimit)
	}

	if v := q.Get("isRead"); v != "" {
		isRead, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("invalid isRead %q", v)
		}
		filter.IsRead = &isRead
	}

	return filter, nil
}

// MarkRead обрабатывает PATCH /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID, ok := GetStudentID(ctx)
	if !ok {
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	notificationID := r.PathValue("id")

	if err := h.notifications.MarkRead(ctx, studentID, notificationID); err != nil {
		if errors.Is(err, storage.ErrNotificationNotFound) {
			h.sendError(w, "Notification not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to mark notification read",
			slog.String("notification_id", notificationID),
			slog.Any("error", err))
		h.sendError(w, "Failed to mark notification as read", http.StatusInternalServerError)
		return
	}

	h.sendData(w, nil, nil, "Notification marked as read", http.StatusOK)
}

// MarkAllRead обрабатывает PUT /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID, ok := GetStudentID(ctx)
	if !ok {
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	changed, err := h.notifications.MarkAllRead(ctx, studentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to mark all notifications read", slog.Any("error", err))
		h.sendError(w, "Failed to mark notifications as read", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "notifications marked read", slog.String("student_id", studentID), slog.Int64("count", changed))
	h.sendData(w, map[string]int64{"modifiedCount": changed}, nil, "All notifications marked as read", http.StatusOK)
}
