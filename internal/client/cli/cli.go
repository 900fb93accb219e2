// Package cli implements the lmsdesk terminal commands on top of the dashboard controllers.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/client/auth"
	"github.com/iudanet/lmsdesk/internal/client/dashboard"
	"github.com/iudanet/lmsdesk/internal/client/iocli"
	"github.com/iudanet/lmsdesk/internal/client/notice"
	"github.com/iudanet/lmsdesk/internal/client/storage"
	"github.com/iudanet/lmsdesk/internal/client/storage/boltdb"
	"github.com/iudanet/lmsdesk/internal/config"
)

// PasswordEnv - переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "LMS_PASSWORD"

// ErrSessionExpired возвращается командой, во время которой сессия истекла
var ErrSessionExpired = errors.New("session expired")

// Platform - все эндпоинты, которые используют команды
type Platform interface {
	auth.LoginAPI
	dashboard.BookmarksAPI
	dashboard.NotificationsAPI
	dashboard.CatalogAPI
	dashboard.ProfileAPI
}

var _ Platform = (*api.Platform)(nil)

// Passwords - источники пароля для login
type Passwords struct {
	FromFile string
	FromArgs string
}

// Cli хранит зависимости команд
type Cli struct {
	io       iocli.IO
	cfg      *config.Client
	clock    clockwork.Clock
	logger   *slog.Logger
	kv       storage.KVStorage
	closer   func() error
	creds    *auth.CredentialStore
	platform Platform
	auth     *auth.Service
}

// Option настраивает Cli
type Option func(*Cli)

// WithIO задает ввод и вывод
func WithIO(io iocli.IO) Option {
	return func(c *Cli) {
		c.io = io
	}
}

// WithClock задает часы для таймеров уведомлений и перехода на login
func WithClock(clock clockwork.Clock) Option {
	return func(c *Cli) {
		c.clock = clock
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cli) {
		c.logger = logger
	}
}

// WithStorage задает хранилище вместо файла BoltDB из конфигурации
func WithStorage(kv storage.KVStorage) Option {
	return func(c *Cli) {
		c.kv = kv
	}
}

// WithPlatform задает API платформы вместо клиента по URL из конфигурации
func WithPlatform(p Platform) Option {
	return func(c *Cli) {
		c.platform = p
	}
}

// New создает Cli. Хранилище и API открываются перед выполнением команды.
func New(cfg *config.Client, opts ...Option) *Cli {
	c := &Cli{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.io == nil {
		c.io = iocli.NewStdio()
	}
	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// open подготавливает хранилище и клиентов API
func (c *Cli) open(ctx context.Context) error {
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.kv == nil {
		db, err := boltdb.New(ctx, c.cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		c.kv = db
		c.closer = db.Close
	}
	c.creds = auth.NewCredentialStore(c.kv)

	if c.platform == nil {
		c.platform = api.NewPlatform(api.Endpoints{
			Students:      c.cfg.StudentsURL,
			Catalog:       c.cfg.CatalogURL,
			Notifications: c.cfg.NotificationsURL,
		}, c.creds,
			api.WithTimeout(c.cfg.RequestTimeout),
			api.WithLogger(c.logger))
	}
	c.auth = auth.NewService(c.platform, c.creds, c.clock, c.logger)
	return nil
}

// Close закрывает хранилище, открытое самим Cli
func (c *Cli) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer()
	c.closer = nil
	return err
}

// Execute выполняет команду и возвращает код выхода процесса
func (c *Cli) Execute(ctx context.Context, args []string) int {
	root := c.Command()
	root.SetArgs(args)
	root.SetOut(c.io)
	root.SetErr(c.io)

	err := root.ExecuteContext(ctx)
	if cerr := c.Close(); cerr != nil {
		c.logger.Error("failed to close database", slog.Any("error", cerr))
	}
	if err == nil {
		return 0
	}

	// Ошибки экранов уже показаны уведомлением
	var shown *shownError
	if !errors.As(err, &shown) {
		c.io.Printf("Error: %v\n", err)
	}
	return 1
}

// shownError - ошибка, которую пользователь уже увидел в уведомлении
type shownError struct {
	err error
}

func (e *shownError) Error() string {
	return e.err.Error()
}

func (e *shownError) Unwrap() error {
	return e.err
}

// screen открывает экран команды: уведомления печатаются сразу,
// переход на страницу входа печатается при завершении.
func (c *Cli) screen() *dashboard.Screen {
	return c.newScreen(c.cfg.NoticeTTL)
}

// courseScreen - экран курсов и закладок с коротким временем показа уведомлений
func (c *Cli) courseScreen() *dashboard.Screen {
	return c.newScreen(notice.ShortTTL)
}

func (c *Cli) newScreen(ttl time.Duration) *dashboard.Screen {
	return dashboard.NewScreen(dashboard.ScreenConfig{
		Credentials:   c.creds,
		Navigator:     navigator{io: c.io},
		Clock:         c.clock,
		Logger:        c.logger,
		Listener:      c.printNotice,
		NoticeTTL:     ttl,
		RedirectDelay: c.cfg.RedirectDelay,
	})
}

// finish закрывает экран. Если сессия истекла, сразу выполняет
// отложенный переход и возвращает ErrSessionExpired.
func (c *Cli) finish(screen *dashboard.Screen, err error) error {
	defer screen.Close()

	if screen.Guard.LoggedOut() {
		screen.Guard.Flush()
		return &shownError{err: ErrSessionExpired}
	}
	if err != nil {
		return &shownError{err: err}
	}
	return nil
}

func (c *Cli) printNotice(n notice.Notice, ev notice.Event) {
	if ev != notice.EventShown {
		return
	}
	switch n.Kind {
	case notice.KindSuccess:
		c.io.Printf("✓ %s\n", n.Text)
	case notice.KindError:
		c.io.Printf("✗ %s\n", n.Text)
	default:
		c.io.Printf("ℹ %s\n", n.Text)
	}
}

// navigator печатает переход, который в браузере был бы сменой страницы
type navigator struct {
	io iocli.IO
}

func (n navigator) Navigate(route string) {
	n.io.Printf("→ %s (run 'lmsdesk login')\n", route)
}

// retry предлагает повторить загрузку, если ввод интерактивный
func (c *Cli) retry(ctx context.Context, screen *dashboard.Screen, load func(ctx context.Context) error) error {
	err := load(ctx)
	for err != nil && c.io.Interactive() && !screen.Guard.LoggedOut() {
		answer, rerr := c.io.ReadInput("Retry? [y/N]: ")
		if rerr != nil || !strings.EqualFold(answer, "y") {
			break
		}
		err = load(ctx)
	}
	return err
}

// getPassword получает пароль из источников по приоритету:
// 1. Переменная окружения LMS_PASSWORD
// 2. Файл из --password-file
// 3. Параметр --password
// 4. Интерактивный ввод
func (c *Cli) getPassword(passwords Passwords) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
