package dashboard

import (
	"context"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/client/auth"
	"github.com/iudanet/lmsdesk/internal/client/notice"
	"github.com/iudanet/lmsdesk/internal/client/session"
	"github.com/iudanet/lmsdesk/internal/client/storage"
	pkgapi "github.com/iudanet/lmsdesk/pkg/api"
)

// noticeLog собирает показанные уведомления
type noticeLog struct {
	shown []notice.Notice
	mu    sync.Mutex
}

func (l *noticeLog) listen(n notice.Notice, ev notice.Event) {
	if ev != notice.EventShown {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shown = append(l.shown, n)
}

func (l *noticeLog) all() []notice.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]notice.Notice, len(l.shown))
	copy(out, l.shown)
	return out
}

func (l *noticeLog) errors() []notice.Notice {
	var out []notice.Notice
	for _, n := range l.all() {
		if n.Kind == notice.KindError {
			out = append(out, n)
		}
	}
	return out
}

type fixture struct {
	clock   *clockwork.FakeClock
	kv      *storage.KVStorageMock
	creds   *auth.CredentialStore
	nav     *session.NavigatorMock
	notices *noticeLog
	screen  *Screen
}

func newFixture(t *testing.T, loggedIn bool) *fixture {
	t.Helper()

	f := &fixture{
		clock:   clockwork.NewFakeClock(),
		kv:      newMemoryKV(),
		nav:     &session.NavigatorMock{NavigateFunc: func(route string) {}},
		notices: &noticeLog{},
	}
	f.creds = auth.NewCredentialStore(f.kv)
	if loggedIn {
		require.NoError(t, f.creds.Set(context.Background(), "valid-token"))
	}
	f.screen = NewScreen(ScreenConfig{
		Credentials: f.creds,
		Navigator:   f.nav,
		Clock:       f.clock,
		Listener:    f.notices.listen,
	})
	t.Cleanup(f.screen.Close)
	return f
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	token, err := f.creds.Token(context.Background())
	require.NoError(t, err)
	return token
}

// newMemoryKV возвращает мок KV хранилища поверх map
func newMemoryKV() *storage.KVStorageMock {
	var mu sync.Mutex
	data := map[string]string{}
	return &storage.KVStorageMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return "", storage.ErrNotFound
			}
			return v, nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, key)
			return nil
		},
	}
}

func courseRecord(id, category string) pkgapi.CourseRecord {
	return pkgapi.CourseRecord{
		ID:       id,
		Title:    "Course " + id,
		Category: category,
		Level:    "beginner",
		Duration: 12,
	}
}

func unauthorized(op string) error {
	return &api.Error{Op: op, Kind: api.KindAuthentication, Status: 401, Message: "Unauthorized"}
}

func notFound(op string) error {
	return &api.Error{Op: op, Kind: api.KindBusiness, Status: 404, Message: "Course not found"}
}
