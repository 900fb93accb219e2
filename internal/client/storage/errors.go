package storage

import "errors"

// Common client storage errors
var (
	// ErrNotFound indicates that no value is stored under the key
	ErrNotFound = errors.New("value not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
