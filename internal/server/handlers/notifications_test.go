package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/pkg/api"
)

func TestNotificationHandler(t *testing.T) {
	store, studentID := setupTestStore(t)
	handler := NewNotificationHandler(setupTestLogger(), store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/notifications", handler.List)
	mux.HandleFunc("PATCH /api/v1/notifications/{id}/read", handler.MarkRead)
	mux.HandleFunc("PUT /api/v1/notifications/read-all", handler.MarkAllRead)

	unread := func(t *testing.T, limit string) ([]api.NotificationRecord, *api.Pagination) {
		t.Helper()
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, request(http.MethodGet, "/api/v1/notifications?page=1&limit="+limit+"&isRead=false", "", studentID))
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		var items []api.NotificationRecord
		decodeData(t, env, &items)
		require.NotNil(t, env.Pagination)
		return items, env.Pagination
	}

	items, pagination := unread(t, "2")
	require.Len(t, items, 2)
	assert.Equal(t, api.Pagination{Total: 7, Page: 1, Limit: 2}, *pagination)
	for _, n := range items {
		assert.False(t, n.IsRead)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, request(http.MethodPatch, "/api/v1/notifications/"+items[0].ID+"/read", "", studentID))
	require.Equal(t, http.StatusOK, w.Code)

	_, pagination = unread(t, "2")
	assert.Equal(t, 6, pagination.Total)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, request(http.MethodPut, "/api/v1/notifications/read-all", "", studentID))
	require.Equal(t, http.StatusOK, w.Code)
	var result map[string]int64
	decodeData(t, decodeEnvelope(t, w), &result)
	assert.Equal(t, int64(6), result["modifiedCount"])

	items, pagination = unread(t, "10")
	assert.Empty(t, items)
	assert.Zero(t, pagination.Total)

	t.Run("unknown notification", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, request(http.MethodPatch, "/api/v1/notifications/missing/read", "", studentID))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad query", func(t *testing.T) {
		for _, query := range []string{"page=0", "limit=abc", "isRead=maybe"} {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, request(http.MethodGet, "/api/v1/notifications?"+query, "", studentID))
			assert.Equal(t, http.StatusBadRequest, w.Code, query)
		}
	})

	t.Run("defaults and limit cap", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, request(http.MethodGet, "/api/v1/notifications?limit=1000", "", studentID))
		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		require.NotNil(t, env.Pagination)
		assert.Equal(t, MaxNotificationLimit, env.Pagination.Limit)
		assert.Equal(t, 1, env.Pagination.Page)
		assert.Equal(t, 9, env.Pagination.Total, "without isRead every notification counts")
	})
}
