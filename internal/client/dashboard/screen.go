// Package dashboard binds the platform endpoints to the screens of the learner dashboard.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/client/notice"
	"github.com/iudanet/lmsdesk/internal/client/session"
)

// Credentials - токен текущей сессии: чтение для проверки входа и очистка при выходе
type Credentials interface {
	api.TokenSource
	session.CredentialClearer
}

// ScreenConfig описывает зависимости экрана
type ScreenConfig struct {
	Credentials   Credentials
	Navigator     session.Navigator
	Clock         clockwork.Clock
	Logger        *slog.Logger
	Listener      notice.Listener
	NoticeTTL     time.Duration
	RedirectDelay time.Duration
}

// Screen - общее для всех контроллеров одного экрана:
// слот уведомлений и Guard, который реагирует на ошибки API.
type Screen struct {
	Notices *notice.Bus
	Guard   *session.Guard
	creds   Credentials
	logger  *slog.Logger
}

// NewScreen создает экран
func NewScreen(cfg ScreenConfig) *Screen {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	cfg.Logger = orDiscard(cfg.Logger)
	if cfg.RedirectDelay <= 0 {
		cfg.RedirectDelay = session.DefaultRedirectDelay
	}

	busOpts := []notice.Option{notice.WithClock(cfg.Clock)}
	if cfg.Listener != nil {
		busOpts = append(busOpts, notice.WithListener(cfg.Listener))
	}
	bus := notice.NewBus(cfg.NoticeTTL, busOpts...)

	guard := session.NewGuard(cfg.Credentials, bus, cfg.Navigator,
		session.WithClock(cfg.Clock),
		session.WithRedirectDelay(cfg.RedirectDelay),
		session.WithLogger(cfg.Logger))

	return &Screen{
		Notices: bus,
		Guard:   guard,
		creds:   cfg.Credentials,
		logger:  cfg.Logger,
	}
}

// RequireCredential проверяет наличие токена до оптимистичного изменения.
// Без токена показывает уведомление и возвращает ошибку вида KindPrecondition.
func (s *Screen) RequireCredential(ctx context.Context, op string) error {
	token, err := s.creds.Token(ctx)
	if err == nil && token != "" {
		return nil
	}

	precondition := &api.Error{Op: op, Kind: api.KindPrecondition, Message: api.MsgAuthRequired, Err: api.ErrNoCredential}
	if err != nil {
		s.logger.Warn("failed to read credential", slog.Any("error", err))
	}
	s.Guard.Handle(ctx, precondition)
	return precondition
}

// Fail передает ошибку в Guard
func (s *Screen) Fail(ctx context.Context, err error) session.Outcome {
	return s.Guard.Handle(ctx, err)
}

// Close вызывается при уходе с экрана: отменяет переход и гасит уведомление
func (s *Screen) Close() {
	s.Guard.Close()
	s.Notices.Clear()
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
