// Package config loads client and sandbox server settings from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/iudanet/lmsdesk/internal/validation"
)

// Client - настройки клиента дашборда
type Client struct {
	StudentsURL      string        `env:"LMS_STUDENTS_URL, default=http://localhost:8080/api/v1/students" validate:"required,url"`
	CatalogURL       string        `env:"LMS_CATALOG_URL, default=http://localhost:8080/api/v1" validate:"required,url"`
	NotificationsURL string        `env:"LMS_NOTIFICATIONS_URL, default=http://localhost:8080/api/v1" validate:"required,url"`
	DBPath           string        `env:"LMS_DB_PATH, default=lmsdesk-client.db" validate:"required"`
	LogLevel         string        `env:"LMS_LOG_LEVEL, default=warn" validate:"oneof=debug info warn error"`
	RequestTimeout   time.Duration `env:"LMS_REQUEST_TIMEOUT, default=15s" validate:"gt=0"`
	RedirectDelay    time.Duration `env:"LMS_REDIRECT_DELAY, default=2s" validate:"gt=0"`
	NoticeTTL        time.Duration `env:"LMS_NOTICE_TTL, default=5s" validate:"gt=0"`
}

// Server - настройки sandbox сервера
type Server struct {
	Addr            string        `env:"LMS_SERVER_ADDR, default=:8080" validate:"required"`
	DBPath          string        `env:"LMS_SERVER_DB, default=lmsdesk-server.db" validate:"required"`
	JWTSecret       string        `env:"LMS_JWT_SECRET, default=lmsdesk-sandbox-secret" validate:"min=16"`
	LogLevel        string        `env:"LMS_LOG_LEVEL, default=info" validate:"oneof=debug info warn error"`
	TokenTTL        time.Duration `env:"LMS_TOKEN_TTL, default=24h" validate:"gt=0"`
	LoginRateWindow time.Duration `env:"LMS_LOGIN_RATE_WINDOW, default=1m" validate:"gt=0"`
	LoginRateLimit  int           `env:"LMS_LOGIN_RATE_LIMIT, default=10" validate:"gt=0"`
	Seed            bool          `env:"LMS_SEED, default=true"`
}

// LoadDotEnv загружает переменные из .env файлов.
// Уже заданные переменные окружения не перезаписываются, отсутствующий файл не ошибка.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// LoadClient читает настройки клиента. Nil lookuper означает переменные окружения процесса.
func LoadClient(ctx context.Context, lookuper envconfig.Lookuper) (*Client, error) {
	var cfg Client
	if err := load(ctx, &cfg, lookuper); err != nil {
		return nil, err
	}
	cfg.StudentsURL = strings.TrimRight(cfg.StudentsURL, "/")
	cfg.CatalogURL = strings.TrimRight(cfg.CatalogURL, "/")
	cfg.NotificationsURL = strings.TrimRight(cfg.NotificationsURL, "/")
	return &cfg, nil
}

// LoadServer читает настройки sandbox сервера
func LoadServer(ctx context.Context, lookuper envconfig.Lookuper) (*Server, error) {
	var cfg Server
	if err := load(ctx, &cfg, lookuper); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(ctx context.Context, target any, lookuper envconfig.Lookuper) error {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   target,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := validation.Struct(target); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate проверяет настройки после изменения флагами командной строки
func (c *Client) Validate() error {
	return validation.Struct(c)
}

// Level возвращает уровень логирования клиента
func (c *Client) Level() slog.Level {
	return ParseLevel(c.LogLevel)
}

// Level возвращает уровень логирования сервера
func (s *Server) Level() slog.Level {
	return ParseLevel(s.LogLevel)
}

// ParseLevel переводит строку в slog.Level, неизвестное значение дает Info
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
