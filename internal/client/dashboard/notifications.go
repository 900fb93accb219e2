package dashboard

import (
	"context"
	"log/slog"
	"slices"

	"github.com/iudanet/lmsdesk/internal/client/mutate"
	"github.com/iudanet/lmsdesk/internal/client/view"
	"github.com/iudanet/lmsdesk/internal/models"
)

// Параметры страницы уведомлений по умолчанию
const (
	DefaultNotificationsPage  = 1
	DefaultNotificationsLimit = 10
)

// NotificationState - страница непрочитанных уведомлений.
// Total - число для бейджа из pagination.total, оно может быть больше len(Items).
type NotificationState struct {
	Items []models.Notification
	Total int
}

// Notifications - контроллер непрочитанных уведомлений
type Notifications struct {
	api     NotificationsAPI
	screen  *Screen
	view    *view.Controller[NotificationState]
	mutator *mutate.Mutator[NotificationState]
	logger  *slog.Logger
	page    int
	limit   int
}

// NewNotifications создает контроллер уведомлений.
// Нулевые page и limit заменяются значениями по умолчанию.
func NewNotifications(api NotificationsAPI, screen *Screen, logger *slog.Logger, page, limit int) *Notifications {
	if page <= 0 {
		page = DefaultNotificationsPage
	}
	if limit <= 0 {
		limit = DefaultNotificationsLimit
	}
	n := &Notifications{
		api:    api,
		screen: screen,
		logger: orDiscard(logger),
		page:   page,
		limit:  limit,
	}
	n.view = view.New("notifications", n.fetch, screen.Guard, logger)
	n.mutator = mutate.New[NotificationState](n.view)
	return n
}

func (n *Notifications) fetch(ctx context.Context) (NotificationState, error) {
	page, err := n.api.UnreadNotifications(ctx, n.page, n.limit)
	if err != nil {
		return NotificationState{}, err
	}
	items := make([]models.Notification, 0, len(page.Items))
	for _, rec := range page.Items {
		items = append(items, models.NotificationFromRecord(rec))
	}
	return NotificationState{Items: items, Total: page.Total}, nil
}

// Load загружает страницу уведомлений
func (n *Notifications) Load(ctx context.Context) error {
	return n.view.Load(ctx)
}

// Retry повторяет загрузку после ошибки
func (n *Notifications) Retry(ctx context.Context) error {
	return n.view.Retry(ctx)
}

// Snapshot возвращает состояние загрузки
func (n *Notifications) Snapshot() view.Snapshot[NotificationState] {
	return n.view.Snapshot()
}

// Count возвращает число для бейджа
func (n *Notifications) Count() int {
	return n.view.Data().Total
}

// Items возвращает загруженные уведомления
func (n *Notifications) Items() []models.Notification {
	return n.view.Data().Items
}

// MarkRead помечает уведомление прочитанным: убирает его из списка и
// уменьшает счетчик на единицу. Список с сервера не перезагружается.
func (n *Notifications) MarkRead(ctx context.Context, id string) error {
	if err := n.screen.RequireCredential(ctx, "mark notification read"); err != nil {
		return err
	}

	var (
		removed     models.Notification
		removedAt   int
		decremented bool
	)
	pending := n.mutator.Mutate(mutate.Action[NotificationState]{
		Key: id,
		Apply: func(s NotificationState) (NotificationState, bool) {
			idx := slices.IndexFunc(s.Items, func(item models.Notification) bool { return item.ID == id })
			if idx < 0 {
				return s, false
			}
			removed, removedAt = s.Items[idx], idx
			decremented = s.Total > 0
			return NotificationState{
				Items: slices.Delete(slices.Clone(s.Items), idx, idx+1),
				Total: max(s.Total-1, 0),
			}, true
		},
		Revert: func(s NotificationState) NotificationState {
			if slices.ContainsFunc(s.Items, func(item models.Notification) bool { return item.ID == id }) {
				return s
			}
			total := s.Total
			if decremented {
				total++
			}
			return NotificationState{
				Items: slices.Insert(slices.Clone(s.Items), min(removedAt, len(s.Items)), removed),
				Total: total,
			}
		},
		Send: func(ctx context.Context) error {
			return n.api.MarkNotificationRead(ctx, id)
		},
	})

	if err := pending.Commit(ctx); err != nil {
		n.logger.Warn("mark read reverted", slog.String("notification_id", id), slog.Any("error", err))
		n.screen.Fail(ctx, err)
		return err
	}
	return nil
}

// MarkAllRead сразу очищает список и счетчик и отправляет запрос в фоне.
// Локальное изменение не откатывается, ошибка только показывается.
// Канал получает результат запроса и закрывается.
func (n *Notifications) MarkAllRead(ctx context.Context) <-chan error {
	result := make(chan error, 1)

	if err := n.screen.RequireCredential(ctx, "mark all notifications read"); err != nil {
		result <- err
		close(result)
		return result
	}

	n.view.Update(func(NotificationState) NotificationState {
		return NotificationState{Items: []models.Notification{}, Total: 0}
	})

	go func() {
		defer close(result)
		err := n.api.MarkAllNotificationsRead(ctx)
		if err != nil {
			n.logger.Warn("mark all read failed", slog.Any("error", err))
			n.screen.Fail(ctx, err)
		}
		result <- err
	}()
	return result
}

// Close отключает контроллер от экрана
func (n *Notifications) Close() {
	n.view.Close()
}
