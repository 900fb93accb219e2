// Package session reacts to failed API calls on behalf of a screen.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/client/notice"
)

// Сообщения, которые показывает Guard
const (
	MsgSessionExpired = "Session expired. Please log in again."
	MsgAuthRequired   = api.MsgAuthRequired
)

// LoginRoute - маршрут экрана входа
const LoginRoute = "/login"

// DefaultRedirectDelay - задержка перед переходом на экран входа
const DefaultRedirectDelay = 2 * time.Second

// Outcome - как Guard обработал ошибку
type Outcome int

const (
	// OutcomeNone - ошибки не было
	OutcomeNone Outcome = iota
	// OutcomeNotified - показано уведомление, сессия не затронута
	OutcomeNotified
	// OutcomeLoggedOut - токен удален, переход на вход запланирован
	OutcomeLoggedOut
)

//go:generate moq -out guard_mock.go . CredentialClearer Notifier Navigator

// CredentialClearer удаляет сохраненный токен
type CredentialClearer interface {
	Clear(ctx context.Context) error
}

// Notifier показывает уведомление на экране
type Notifier interface {
	Show(text string, kind notice.Kind)
}

// Navigator переводит пользователя на другой экран
type Navigator interface {
	Navigate(route string)
}

// Guard обрабатывает ошибки API одного экрана.
// На ошибку аутентификации токен удаляется, показывается одно уведомление
// и один раз за жизнь экрана планируется переход на вход.
type Guard struct {
	creds    CredentialClearer
	notices  Notifier
	nav      Navigator
	clock    clockwork.Clock
	timer    clockwork.Timer
	logger   *slog.Logger
	delay    time.Duration
	mu       sync.Mutex
	loggedIn bool // false после первой ошибки аутентификации
	closed   bool
	pending  bool
}

// Option настраивает Guard
type Option func(*Guard)

// WithClock задает часы
func WithClock(clock clockwork.Clock) Option {
	return func(g *Guard) {
		g.clock = clock
	}
}

// WithRedirectDelay задает задержку перехода на вход
func WithRedirectDelay(d time.Duration) Option {
	return func(g *Guard) {
		g.delay = d
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		g.logger = logger
	}
}

// NewGuard создает Guard для одного экрана
func NewGuard(creds CredentialClearer, notices Notifier, nav Navigator, opts ...Option) *Guard {
	g := &Guard{
		creds:    creds,
		notices:  notices,
		nav:      nav,
		clock:    clockwork.NewRealClock(),
		logger:   slog.New(slog.DiscardHandler),
		delay:    DefaultRedirectDelay,
		loggedIn: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Handle обрабатывает результат вызова API
func (g *Guard) Handle(ctx context.Context, err error) Outcome {
	if err == nil {
		return OutcomeNone
	}

	apiErr, ok := api.AsError(err)
	if !ok {
		g.logger.Error("unexpected error", slog.Any("error", err))
		g.notices.Show(err.Error(), notice.KindError)
		return OutcomeNotified
	}

	switch apiErr.Kind {
	case api.KindAuthentication:
		return g.logout(ctx, apiErr)
	case api.KindPrecondition:
		g.notices.Show(MsgAuthRequired, notice.KindError)
		return OutcomeNotified
	default:
		g.logger.Warn("request failed",
			slog.String("op", apiErr.Op),
			slog.String("kind", apiErr.Kind.String()),
			slog.Int("status", apiErr.Status),
			slog.Any("error", err))
		g.notices.Show(apiErr.Message, notice.KindError)
		return OutcomeNotified
	}
}

func (g *Guard) logout(ctx context.Context, apiErr *api.Error) Outcome {
	g.mu.Lock()
	if !g.loggedIn || g.closed {
		// Повторная ошибка после выхода: уведомление и переход уже были
		g.mu.Unlock()
		return OutcomeLoggedOut
	}
	g.loggedIn = false
	g.mu.Unlock()

	g.logger.Info("session rejected by server",
		slog.String("op", apiErr.Op),
		slog.Int("status", apiErr.Status))

	// Токен удаляем даже если запрос экрана уже отменен
	if err := g.creds.Clear(context.WithoutCancel(ctx)); err != nil {
		g.logger.Error("failed to clear credential", slog.Any("error", err))
	}
	g.notices.Show(MsgSessionExpired, notice.KindError)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return OutcomeLoggedOut
	}
	g.pending = true
	g.timer = g.clock.AfterFunc(g.delay, g.navigate)
	return OutcomeLoggedOut
}

func (g *Guard) navigate() {
	g.mu.Lock()
	if !g.pending || g.closed {
		g.mu.Unlock()
		return
	}
	g.pending = false
	g.timer = nil
	g.mu.Unlock()

	g.nav.Navigate(LoginRoute)
}

// LoggedOut сообщает, был ли на этом экране выход из сессии
func (g *Guard) LoggedOut() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.loggedIn
}

// Flush немедленно выполняет запланированный переход.
// Нужен процессам, которые завершаются раньше, чем истечет задержка.
func (g *Guard) Flush() {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
	}
	g.mu.Unlock()
	g.navigate()
}

// Close отменяет запланированный переход. После Close Guard не навигирует.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.pending = false
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
