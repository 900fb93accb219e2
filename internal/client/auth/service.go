package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/lmsdesk/internal/validation"
	pkgapi "github.com/iudanet/lmsdesk/pkg/api"
)

//go:generate moq -out login_mock.go . LoginAPI

// LoginAPI - часть API платформы, нужная для входа
type LoginAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
}

// Status описывает текущее состояние сессии
type Status struct {
	Claims   *Claims // nil, если токен не удалось разобрать
	LoggedIn bool
	Expired  bool
}

// Service предоставляет функции авторизации
type Service struct {
	api    LoginAPI
	store  *CredentialStore
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(api LoginAPI, store *CredentialStore, clock clockwork.Clock, logger *slog.Logger) *Service {
	return &Service{
		api:    api,
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Login выполняет вход и сохраняет полученный токен
func (s *Service) Login(ctx context.Context, email, password string) (*Status, error) {
	// Валидация входных данных
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login failed: server returned empty token")
	}

	if err := s.store.Set(ctx, resp.Token); err != nil {
		return nil, err
	}

	s.logger.Info("logged in", slog.String("email", email))
	return s.statusOf(resp.Token), nil
}

// Logout удаляет локальный токен. Сервер не уведомляется.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}

// Status возвращает состояние сессии по сохраненному токену
func (s *Service) Status(ctx context.Context) (*Status, error) {
	token, err := s.store.Get(ctx)
	if errors.Is(err, ErrNoCredential) {
		return &Status{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.statusOf(token), nil
}

func (s *Service) statusOf(token string) *Status {
	st := &Status{LoggedIn: true}
	claims, err := ParseClaims(token)
	if err != nil {
		s.logger.Debug("token is not a readable JWT", slog.Any("error", err))
		return st
	}
	st.Claims = claims
	st.Expired = claims.Expired(s.clock.Now())
	return st
}
