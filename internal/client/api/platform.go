package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/lmsdesk/pkg/api"
)

// Endpoints содержит базовые URL сервисов платформы
type Endpoints struct {
	// Students - сервис студентов: профиль и закладки (.../api/v1/students)
	Students string
	// Catalog - каталог курсов и аутентификация (.../api/v1)
	Catalog string
	// Notifications - сервис уведомлений (.../api/v1)
	Notifications string
}

// NotificationPage - страница непрочитанных уведомлений.
// Total берется из pagination.total и может быть больше len(Items).
type NotificationPage struct {
	Items []api.NotificationRecord
	Total int
}

// Platform объединяет клиентов всех сервисов и знает их пути
type Platform struct {
	students      *Client
	catalog       *Client
	notifications *Client
}

// NewPlatform создает клиентов для всех сервисов с общим источником токена
func NewPlatform(endpoints Endpoints, tokens TokenSource, opts ...Option) *Platform {
	return &Platform{
		students:      NewClient(endpoints.Students, tokens, opts...),
		catalog:       NewClient(endpoints.Catalog, tokens, opts...),
		notifications: NewClient(endpoints.Notifications, tokens, opts...),
	}
}

// Login выполняет аутентификацию студента
func (p *Platform) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	res, err := p.catalog.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/login",
		Body:     req,
		Op:       "login",
		Fallback: "Login failed",
		Auth:     AuthOptional,
	})
	if err != nil {
		return nil, err
	}
	var resp api.TokenResponse
	if err := decode(res, "login", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCourses возвращает каталог. Токен не обязателен.
func (p *Platform) ListCourses(ctx context.Context) ([]api.CourseRecord, error) {
	res, err := p.catalog.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "/courses",
		Op:       "fetch courses",
		Fallback: "Failed to fetch courses",
		Auth:     AuthOptional,
	})
	if err != nil {
		return nil, err
	}
	var courses []api.CourseRecord
	if err := decode(res, "fetch courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse возвращает один курс каталога
func (p *Platform) GetCourse(ctx context.Context, id string) (*api.CourseRecord, error) {
	res, err := p.catalog.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "/courses/" + url.PathEscape(id),
		Op:       "fetch course",
		Fallback: "Failed to fetch course details",
		Auth:     AuthOptional,
	})
	if err != nil {
		return nil, err
	}
	var course api.CourseRecord
	if err := decode(res, "fetch course", &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// BookmarkedCourses возвращает курсы из закладок текущего студента
func (p *Platform) BookmarkedCourses(ctx context.Context) ([]api.CourseRecord, error) {
	res, err := p.students.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "/courses/bookmarked",
		Op:       "fetch bookmarks",
		Fallback: "Failed to fetch bookmarked courses",
	})
	if err != nil {
		return nil, err
	}
	var courses []api.CourseRecord
	if err := decode(res, "fetch bookmarks", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// AddBookmark добавляет курс в закладки
func (p *Platform) AddBookmark(ctx context.Context, courseID string) error {
	_, err := p.students.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/courses/" + url.PathEscape(courseID) + "/bookmark",
		Op:       "add bookmark",
		Fallback: "Failed to update bookmark",
	})
	return err
}

// RemoveBookmark удаляет курс из закладок
func (p *Platform) RemoveBookmark(ctx context.Context, courseID string) error {
	_, err := p.students.Do(ctx, Request{
		Method:   http.MethodDelete,
		Path:     "/courses/" + url.PathEscape(courseID) + "/bookmark",
		Op:       "remove bookmark",
		Fallback: "Failed to update bookmark",
	})
	return err
}

// Profile возвращает профиль текущего студента
func (p *Platform) Profile(ctx context.Context) (*api.ProfileRecord, error) {
	res, err := p.students.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "/profile",
		Op:       "fetch profile",
		Fallback: "Failed to fetch profile",
	})
	if err != nil {
		return nil, err
	}
	var profile api.ProfileRecord
	if err := decode(res, "fetch profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UnreadNotifications возвращает страницу непрочитанных уведомлений
func (p *Platform) UnreadNotifications(ctx context.Context, page, limit int) (*NotificationPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("isRead", "false")

	res, err := p.notifications.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     "/notifications",
		Query:    query,
		Op:       "fetch notifications",
		Fallback: "Failed to fetch notifications",
	})
	if err != nil {
		return nil, err
	}

	var items []api.NotificationRecord
	if err := decode(res, "fetch notifications", &items); err != nil {
		return nil, err
	}
	total := len(items)
	if res.Pagination != nil {
		total = res.Pagination.Total
	}
	return &NotificationPage{Items: items, Total: total}, nil
}

// MarkNotificationRead помечает уведомление прочитанным
func (p *Platform) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := p.notifications.Do(ctx, Request{
		Method:   http.MethodPatch,
		Path:     "/notifications/" + url.PathEscape(id) + "/read",
		Op:       "mark notification read",
		Fallback: "Failed to mark notification as read",
	})
	return err
}

// MarkAllNotificationsRead помечает все уведомления прочитанными
func (p *Platform) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := p.notifications.Do(ctx, Request{
		Method:   http.MethodPut,
		Path:     "/notifications/read-all",
		Op:       "mark all notifications read",
		Fallback: "Failed to mark all notifications as read",
	})
	return err
}

// decode приводит ошибку декодирования data к транспортной
func decode(res *Result, op string, out any) error {
	if err := res.Decode(out); err != nil {
		return &Error{Op: op, Kind: KindTransport, Message: MsgBadResponse, Err: err}
	}
	return nil
}
