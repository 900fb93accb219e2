package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/internal/client/storage"
)

// создаём тестовое BoltDB хранилище во временной директории
func createTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "kv_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store, dbPath
}

func TestStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	// До сохранения значения нет
	_, err := store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyToken, "token-abc"))

	got, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", got)

	// Перезапись
	require.NoError(t, store.Set(ctx, storage.KeyToken, "token-def"))
	got, err = store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "token-def", got)

	require.NoError(t, store.Delete(ctx, storage.KeyToken))
	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_DeleteMissingKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	assert.NoError(t, store.Delete(ctx, storage.KeyToken))
	assert.NoError(t, store.Delete(ctx, storage.KeyToken))
}

func TestStorage_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	require.NoError(t, store.Set(ctx, storage.KeyToken, "token-abc"))
	require.NoError(t, store.Set(ctx, storage.KeyInterests, `["Data Science"]`))

	require.NoError(t, store.Delete(ctx, storage.KeyToken))

	interests, err := store.Get(ctx, storage.KeyInterests)
	require.NoError(t, err)
	assert.JSONEq(t, `["Data Science"]`, interests)
}

func TestStorage_ValuesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyInterests, `["Data Science"]`))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.Get(ctx, storage.KeyInterests)
	require.NoError(t, err)
	assert.Equal(t, `["Data Science"]`, got)
}

func TestStorage_ClosedStorage(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "closed.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Set(ctx, storage.KeyToken, "x"), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Delete(ctx, storage.KeyToken), storage.ErrStorageClosed)
}
