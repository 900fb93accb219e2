// Package server собирает sandbox платформы: маршруты, middleware и жизненный цикл HTTP сервера.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/lmsdesk/internal/config"
	"github.com/iudanet/lmsdesk/internal/server/handlers"
	"github.com/iudanet/lmsdesk/internal/server/middleware"
	"github.com/iudanet/lmsdesk/internal/server/storage"
)

// ShutdownTimeout - сколько ждем завершения активных запросов при остановке
const ShutdownTimeout = 5 * time.Second

// Store - хранилища, которые обслуживает сервер
type Store interface {
	storage.StudentStorage
	storage.CourseStorage
	storage.BookmarkStorage
	storage.NotificationStorage
	handlers.Pinger
}

// Server - sandbox платформы
type Server struct {
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	handler http.Handler
	addr    string
}

// Option настраивает Server
type Option func(*serverOptions)

type serverOptions struct {
	clock   clockwork.Clock
	version string
}

// WithClock задает часы для rate limiter (тесты)
func WithClock(clock clockwork.Clock) Option {
	return func(o *serverOptions) { o.clock = clock }
}

// WithVersion задает версию для health check
func WithVersion(version string) Option {
	return func(o *serverOptions) { o.version = version }
}

// New собирает сервер. Close освобождает фоновые ресурсы.
func New(cfg *config.Server, store Store, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := serverOptions{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		logger:  logger,
		limiter: middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow, o.clock),
		addr:    cfg.Addr,
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.TokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	courseHandler := handlers.NewCourseHandler(logger, store)
	studentHandler := handlers.NewStudentHandler(logger, store, store)
	notificationHandler := handlers.NewNotificationHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, o.version)

	authed := middleware.AuthMiddleware(logger, jwtConfig)
	limited := middleware.RateLimitMiddleware(s.limiter, logger)

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/auth/login", limited(http.HandlerFunc(authHandler.Login)))

	mux.HandleFunc("GET /api/v1/courses", courseHandler.List)
	mux.HandleFunc("GET /api/v1/courses/{id}", courseHandler.Get)

	mux.Handle("GET /api/v1/students/profile", authed(http.HandlerFunc(studentHandler.Profile)))
	mux.Handle("GET /api/v1/students/courses/bookmarked", authed(http.HandlerFunc(studentHandler.Bookmarked)))
	mux.Handle("POST /api/v1/students/courses/{id}/bookmark", authed(http.HandlerFunc(studentHandler.AddBookmark)))
	mux.Handle("DELETE /api/v1/students/courses/{id}/bookmark", authed(http.HandlerFunc(studentHandler.RemoveBookmark)))

	mux.Handle("GET /api/v1/notifications", authed(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("PATCH /api/v1/notifications/{id}/read", authed(http.HandlerFunc(notificationHandler.MarkRead)))
	mux.Handle("PUT /api/v1/notifications/read-all", authed(http.HandlerFunc(notificationHandler.MarkAllRead)))

	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, logger, "Route not found", http.StatusNotFound)
	})

	var handler http.Handler = mux
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/health"})(handler)
	handler = middleware.RequestIDMiddleware()(handler)
	s.handler = handler

	return s
}

// Handler возвращает корневой http.Handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает addr до отмены ctx, затем дожидается активных запросов
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает соединения ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("sandbox server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close останавливает фоновые задачи сервера
func (s *Server) Close() {
	s.limiter.Stop()
}
