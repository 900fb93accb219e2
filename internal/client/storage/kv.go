package storage

import (
	"context"
)

//go:generate moq -out kv_mock.go . KVStorage

// Ключи плоского хранилища клиента
const (
	// KeyToken хранит bearer token текущей сессии
	KeyToken = "token"
	// KeyInterests хранит JSON массив выбранных категорий интересов
	KeyInterests = "myInterests"
)

// KVStorage defines the durable client key-value string store.
// It is the lowest storage layer: values are stored as-is, callers own
// the serialization (the interest set is JSON).
type KVStorage interface {
	// Get returns the value stored under key
	// Returns ErrNotFound if the key has no value
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}
