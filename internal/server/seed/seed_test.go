package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/lmsdesk/internal/server/storage"
	"github.com/iudanet/lmsdesk/internal/server/storage/sqlite"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, Run(ctx, store, nil))
	require.NoError(t, Run(ctx, store, nil), "second run is a no-op")

	student, err := store.GetStudentByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(DemoPassword)))

	courses, err := store.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(Courses()))

	bookmarks, err := store.ListBookmarked(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 3)

	unread := false
	_, total, err := store.ListNotifications(ctx, student.ID, storage.NotificationFilter{IsRead: &unread, Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestCourses_Categories(t *testing.T) {
	seen := map[string]bool{}
	ids := map[string]bool{}
	for _, c := range Courses() {
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
		seen[c.Category] = true
	}
	// больше DefaultVisibleCategories, чтобы в клиенте было что раскрывать
	assert.Greater(t, len(seen), 5)
}
