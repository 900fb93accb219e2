package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/client/notice"
	pkgapi "github.com/iudanet/lmsdesk/pkg/api"
)

func unreadPage(total int, ids ...string) *api.NotificationPage {
	page := &api.NotificationPage{Total: total}
	for _, id := range ids {
		page.Items = append(page.Items, pkgapi.NotificationRecord{ID: id, Title: "Title " + id})
	}
	return page
}

func notificationsAPI(page *api.NotificationPage) *NotificationsAPIMock {
	return &NotificationsAPIMock{
		UnreadNotificationsFunc: func(ctx context.Context, p, limit int) (*api.NotificationPage, error) {
			return page, nil
		},
		MarkNotificationReadFunc: func(ctx context.Context, id string) error {
			return nil
		},
		MarkAllNotificationsReadFunc: func(ctx context.Context) error {
			return nil
		},
	}
}

func notificationIDs(n *Notifications) []string {
	var ids []string
	for _, item := range n.Items() {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestNotifications_BadgeUsesPaginationTotal(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := notificationsAPI(unreadPage(7, "n1"))
	n := NewNotifications(mockAPI, f.screen, nil, 0, 0)

	require.NoError(t, n.Load(context.Background()))

	assert.Equal(t, 7, n.Count())
	assert.Len(t, n.Items(), 1)

	calls := mockAPI.UnreadNotificationsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, DefaultNotificationsPage, calls[0].Page)
	assert.Equal(t, DefaultNotificationsLimit, calls[0].Limit)
}

func TestNotifications_MarkReadDecrements(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := notificationsAPI(unreadPage(7, "n1", "n2"))
	n := NewNotifications(mockAPI, f.screen, nil, 1, 10)
	require.NoError(t, n.Load(context.Background()))

	require.NoError(t, n.MarkRead(context.Background(), "n1"))

	assert.Equal(t, 6, n.Count())
	assert.Equal(t, []string{"n2"}, notificationIDs(n))
	// Список не перезагружается
	assert.Len(t, mockAPI.UnreadNotificationsCalls(), 1)
	require.Len(t, mockAPI.MarkNotificationReadCalls(), 1)
	assert.Equal(t, "n1", mockAPI.MarkNotificationReadCalls()[0].Id)
}

func TestNotifications_MarkReadNeverNegative(t *testing.T) {
	f := newFixture(t, true)
	n := NewNotifications(notificationsAPI(unreadPage(0, "n1")), f.screen, nil, 1, 10)
	require.NoError(t, n.Load(context.Background()))

	require.NoError(t, n.MarkRead(context.Background(), "n1"))

	assert.Equal(t, 0, n.Count())
	assert.Empty(t, n.Items())
}

func TestNotifications_MarkReadTwiceSendsOnce(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := notificationsAPI(unreadPage(3, "n1", "n2", "n3"))
	n := NewNotifications(mockAPI, f.screen, nil, 1, 10)
	require.NoError(t, n.Load(context.Background()))

	require.NoError(t, n.MarkRead(context.Background(), "n2"))
	require.NoError(t, n.MarkRead(context.Background(), "n2"))

	assert.Equal(t, 2, n.Count())
	assert.Len(t, mockAPI.MarkNotificationReadCalls(), 1)
}

func TestNotifications_MarkReadFailureReverts(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := notificationsAPI(unreadPage(5, "n1", "n2", "n3"))
	mockAPI.MarkNotificationReadFunc = func(ctx context.Context, id string) error {
		return &api.Error{Op: "mark notification read", Kind: api.KindBusiness, Status: 404, Message: "Notification not found"}
	}
	n := NewNotifications(mockAPI, f.screen, nil, 1, 10)
	require.NoError(t, n.Load(context.Background()))

	err := n.MarkRead(context.Background(), "n2")
	require.Error(t, err)

	assert.Equal(t, 5, n.Count())
	assert.Equal(t, []string{"n1", "n2", "n3"}, notificationIDs(n))

	errs := f.notices.errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "Notification not found", errs[0].Text)
}

func TestNotifications_MarkAllReadKeepsClearedOnFailure(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := notificationsAPI(unreadPage(4, "n1", "n2"))
	mockAPI.MarkAllNotificationsReadFunc = func(ctx context.Context) error {
		return fmt.Errorf("mark all: %w", errors.New("connection reset"))
	}
	n := NewNotifications(mockAPI, f.screen, nil, 1, 10)
	require.NoError(t, n.Load(context.Background()))

	done := n.MarkAllRead(context.Background())
	// Список очищен до ответа сервера
	assert.Equal(t, 0, n.Count())
	assert.Empty(t, n.Items())

	err := <-done
	require.Error(t, err)
	_, open := <-done
	assert.False(t, open)

	// Без отката
	assert.Equal(t, 0, n.Count())
	assert.Empty(t, n.Items())
	errs := f.notices.errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "mark all: connection reset", errs[0].Text)
}

func TestNotifications_MarkAllReadSuccess(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := notificationsAPI(unreadPage(2, "n1", "n2"))
	n := NewNotifications(mockAPI, f.screen, nil, 1, 10)
	require.NoError(t, n.Load(context.Background()))

	require.NoError(t, <-n.MarkAllRead(context.Background()))

	assert.Equal(t, 0, n.Count())
	assert.Len(t, mockAPI.MarkAllNotificationsReadCalls(), 1)
	assert.Empty(t, f.notices.errors())
}

func TestNotifications_RequiresCredential(t *testing.T) {
	f := newFixture(t, false)
	mockAPI := notificationsAPI(unreadPage(1, "n1"))
	n := NewNotifications(mockAPI, f.screen, nil, 1, 10)

	err := n.MarkRead(context.Background(), "n1")
	assert.True(t, api.IsKind(err, api.KindPrecondition))

	err = <-n.MarkAllRead(context.Background())
	assert.True(t, api.IsKind(err, api.KindPrecondition))

	assert.Empty(t, mockAPI.MarkNotificationReadCalls())
	assert.Empty(t, mockAPI.MarkAllNotificationsReadCalls())

	n2, ok := f.screen.Notices.Current()
	require.True(t, ok)
	assert.Equal(t, notice.Notice{Text: api.MsgAuthRequired, Kind: notice.KindError}, n2)
}
