package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/internal/client/storage"
)

// newMemoryKV возвращает мок KV хранилища поверх map
func newMemoryKV() *storage.KVStorageMock {
	data := map[string]string{}
	return &storage.KVStorageMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			v, ok := data[key]
			if !ok {
				return "", storage.ErrNotFound
			}
			return v, nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			data[key] = value
			return nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			delete(data, key)
			return nil
		},
	}
}

func TestCredentialStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	store := NewCredentialStore(kv)

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)

	require.NoError(t, store.Set(ctx, "token-1"))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// Перезапись
	require.NoError(t, store.Set(ctx, "token-2"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)

	// Повторная очистка не является ошибкой
	require.NoError(t, store.Clear(ctx))
	assert.Len(t, kv.DeleteCalls(), 2)
	assert.Equal(t, storage.KeyToken, kv.SetCalls()[0].Key)
}

func TestCredentialStore_SetEmpty(t *testing.T) {
	store := NewCredentialStore(newMemoryKV())
	assert.Error(t, store.Set(context.Background(), ""))
}

func TestCredentialStore_Token(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(newMemoryKV())

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Set(ctx, "abc"))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestCredentialStore_StorageError(t *testing.T) {
	ctx := context.Background()
	kv := &storage.KVStorageMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "", storage.ErrStorageClosed
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			return errors.New("disk full")
		},
	}
	store := NewCredentialStore(kv)

	_, err := store.Get(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.NotErrorIs(t, err, ErrNoCredential)

	_, err = store.Token(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	assert.Error(t, store.Clear(ctx))
}
