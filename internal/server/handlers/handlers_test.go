package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/internal/server/seed"
	"github.com/iudanet/lmsdesk/internal/server/storage/sqlite"
	"github.com/iudanet/lmsdesk/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestStore возвращает in-memory базу с демо-данными и id демо-студента
func setupTestStore(t *testing.T) (*sqlite.Storage, string) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, seed.Run(ctx, store, nil))
	student, err := store.GetStudentByEmail(ctx, seed.DemoEmail)
	require.NoError(t, err)
	return store, student.ID
}

// request создает запрос; непустой studentID кладется в контекст, как это делает AuthMiddleware
func request(method, target, body, studentID string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if studentID != "" {
		req = req.WithContext(WithStudent(req.Context(), studentID, seed.DemoEmail))
	}
	return req
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) api.Envelope {
	t.Helper()
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var env api.Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func decodeData(t *testing.T, env api.Envelope, out any) {
	t.Helper()
	require.True(t, env.Success, "message: %s", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
