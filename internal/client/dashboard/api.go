package dashboard

import (
	"context"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/models"
	pkgapi "github.com/iudanet/lmsdesk/pkg/api"
)

//go:generate moq -out api_mock.go . BookmarksAPI NotificationsAPI CatalogAPI ProfileAPI

// BookmarksAPI - эндпоинты закладок
type BookmarksAPI interface {
	BookmarkedCourses(ctx context.Context) ([]pkgapi.CourseRecord, error)
	AddBookmark(ctx context.Context, courseID string) error
	RemoveBookmark(ctx context.Context, courseID string) error
}

// NotificationsAPI - эндпоинты уведомлений
type NotificationsAPI interface {
	UnreadNotifications(ctx context.Context, page, limit int) (*api.NotificationPage, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// CatalogAPI - эндпоинты каталога
type CatalogAPI interface {
	ListCourses(ctx context.Context) ([]pkgapi.CourseRecord, error)
	GetCourse(ctx context.Context, id string) (*pkgapi.CourseRecord, error)
}

// ProfileAPI - эндпоинт профиля
type ProfileAPI interface {
	Profile(ctx context.Context) (*pkgapi.ProfileRecord, error)
}

var (
	_ BookmarksAPI     = (*api.Platform)(nil)
	_ NotificationsAPI = (*api.Platform)(nil)
	_ CatalogAPI       = (*api.Platform)(nil)
	_ ProfileAPI       = (*api.Platform)(nil)
)

// toCourses применяет значения по умолчанию на границе API
func toCourses(records []pkgapi.CourseRecord) []models.Course {
	courses := make([]models.Course, 0, len(records))
	for _, rec := range records {
		courses = append(courses, models.FillDefaults(rec))
	}
	return courses
}
