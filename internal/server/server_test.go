package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/config"
	"github.com/iudanet/lmsdesk/internal/server/handlers"
	"github.com/iudanet/lmsdesk/internal/server/middleware"
	"github.com/iudanet/lmsdesk/internal/server/seed"
	"github.com/iudanet/lmsdesk/internal/server/storage/sqlite"
	pkgapi "github.com/iudanet/lmsdesk/pkg/api"
)

func testConfig() *config.Server {
	return &config.Server{
		Addr:            "127.0.0.1:0",
		DBPath:          ":memory:",
		JWTSecret:       "test-secret-key-0123",
		LogLevel:        "error",
		TokenTTL:        time.Hour,
		LoginRateLimit:  100,
		LoginRateWindow: time.Minute,
	}
}

// sandbox поднимает сервер с демо-данными поверх in-memory базы
func sandbox(t *testing.T, cfg *config.Server) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, cfg.DBPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, seed.Run(ctx, store, nil))

	srv := New(cfg, store, nil, WithClock(clockwork.NewFakeClock()), WithVersion("test"))
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// tokenHolder - TokenSource клиента в памяти
type tokenHolder struct {
	token string
	mu    sync.Mutex
}

func (h *tokenHolder) Token(context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token, nil
}

func (h *tokenHolder) set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func platform(ts *httptest.Server, tokens clientapi.TokenSource) *clientapi.Platform {
	return clientapi.NewPlatform(clientapi.Endpoints{
		Students:      ts.URL + "/api/v1/students",
		Catalog:       ts.URL + "/api/v1",
		Notifications: ts.URL + "/api/v1",
	}, tokens, clientapi.WithTimeout(5*time.Second))
}

func TestSandbox_ClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	ts := sandbox(t, cfg)

	tokens := &tokenHolder{}
	p := platform(ts, tokens)

	courses, err := p.ListCourses(ctx)
	require.NoError(t, err, "catalog is anonymous")
	assert.Len(t, courses, len(seed.Courses()))

	_, err = p.BookmarkedCourses(ctx)
	assert.True(t, clientapi.IsKind(err, clientapi.KindPrecondition), "no request without a token: %v", err)

	_, err = p.Login(ctx, pkgapi.LoginRequest{Email: seed.DemoEmail, Password: "wrong-password"})
	assert.True(t, clientapi.IsKind(err, clientapi.KindAuthentication), "%v", err)

	resp, err := p.Login(ctx, pkgapi.LoginRequest{Email: seed.DemoEmail, Password: seed.DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	tokens.set(resp.Token)

	profile, err := p.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.DemoFirstName, profile.FirstName)

	require.NoError(t, p.AddBookmark(ctx, "c-k8s"))
	bookmarked, err := p.BookmarkedCourses(ctx)
	require.NoError(t, err)
	require.Len(t, bookmarked, 4)
	assert.Equal(t, "c-k8s", bookmarked[0].ID)

	require.NoError(t, p.RemoveBookmark(ctx, "c-k8s"))
	err = p.AddBookmark(ctx, "missing")
	assert.True(t, clientapi.IsKind(err, clientapi.KindBusiness), "%v", err)

	page, err := p.UnreadNotifications(ctx, 1, 5)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 7, page.Total)

	require.NoError(t, p.MarkNotificationRead(ctx, page.Items[0].ID))
	page, err = p.UnreadNotifications(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)

	require.NoError(t, p.MarkAllNotificationsRead(ctx))
	page, err = p.UnreadNotifications(ctx, 1, 5)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
}

func TestSandbox_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	ts := sandbox(t, cfg)

	expired, _, err := handlers.GenerateAccessToken(handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: -time.Minute,
	}, "someone", seed.DemoEmail)
	require.NoError(t, err)

	_, err = platform(ts, &tokenHolder{token: expired}).Profile(context.Background())
	apiErr, ok := clientapi.AsError(err)
	require.True(t, ok, "%v", err)
	assert.Equal(t, clientapi.KindAuthentication, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestSandbox_LoginRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = 2
	ts := sandbox(t, cfg)

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Post(ts.URL+"/api/v1/auth/login", "application/json",
			strings.NewReader(`{"email":"`+seed.DemoEmail+`","password":"wrong-password"}`))
		require.NoError(t, err)
		_ = resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)

	resp, err := http.Get(ts.URL + "/api/v1/courses")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "only login is limited")
}

func TestSandbox_HealthAndUnknownRoute(t *testing.T) {
	ts := sandbox(t, testConfig())

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	var health handlers.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)

	resp2, err := http.Get(ts.URL + "/api/v2/nothing")
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
	var env pkgapi.Envelope
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&env))
	assert.False(t, env.Success)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := New(testConfig(), store, nil)
	t.Cleanup(srv.Close)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
