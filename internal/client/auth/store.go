package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/lmsdesk/internal/client/storage"
)

// ErrNoCredential означает, что токен не сохранен
var ErrNoCredential = errors.New("no credential stored")

// CredentialStore хранит bearer token текущей сессии.
// Токен хранится как есть под ключом storage.KeyToken и переживает перезапуск.
type CredentialStore struct {
	kv storage.KVStorage
}

// NewCredentialStore создает хранилище токена поверх KV хранилища
func NewCredentialStore(kv storage.KVStorage) *CredentialStore {
	return &CredentialStore{kv: kv}
}

// Get возвращает сохраненный токен или ErrNoCredential
func (s *CredentialStore) Get(ctx context.Context) (string, error) {
	token, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNoCredential
		}
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	if token == "" {
		return "", ErrNoCredential
	}
	return token, nil
}

// Token возвращает токен или пустую строку, если пользователь не вошел.
// Используется API клиентом как источник токена.
func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	token, err := s.Get(ctx)
	if errors.Is(err, ErrNoCredential) {
		return "", nil
	}
	return token, err
}

// Set сохраняет токен, заменяя предыдущий
func (s *CredentialStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if err := s.kv.Set(ctx, storage.KeyToken, token); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// Clear удаляет токен. Повторный вызов безопасен.
func (s *CredentialStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyToken); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
