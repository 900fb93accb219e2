// Package view holds the load state of a single remote list or record on a screen.
package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/lmsdesk/internal/client/session"
)

// Ошибки контроллера
var (
	// ErrClosed возвращается после Close
	ErrClosed = errors.New("view is closed")
	// ErrNotFailed возвращается Retry, если последняя загрузка не завершилась ошибкой
	ErrNotFailed = errors.New("view is not in failed state")
	// ErrStale означает, что результат загрузки устарел и отброшен
	ErrStale = errors.New("load superseded")
)

// Status - состояние загрузки
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// FetchFunc загружает данные экрана
type FetchFunc[T any] func(ctx context.Context) (T, error)

//go:generate moq -out handler_mock.go . ErrorHandler

// ErrorHandler реагирует на ошибку загрузки. Реализуется session.Guard.
type ErrorHandler interface {
	Handle(ctx context.Context, err error) session.Outcome
}

// Snapshot - согласованный срез состояния контроллера
type Snapshot[T any] struct {
	Err    error
	Data   T
	Status Status
}

// Controller хранит состояние загрузки одного списка или записи.
// Пока идет загрузка, данные прошлой загрузки остаются доступны.
type Controller[T any] struct {
	err     error
	fetch   FetchFunc[T]
	handler ErrorHandler
	logger  *slog.Logger
	data    T
	name    string
	gen     uint64
	mu      sync.Mutex
	status  Status
	closed  bool
}

// New создает контроллер в состоянии idle
func New[T any](name string, fetch FetchFunc[T], handler ErrorHandler, logger *slog.Logger) *Controller[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller[T]{
		name:    name,
		fetch:   fetch,
		handler: handler,
		logger:  logger.With(slog.String("view", name)),
	}
}

// Load загружает данные. Повторный Load во время загрузки делает
// результат предыдущей устаревшим: применяется только последний.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.gen++
	gen := c.gen
	c.status = StatusLoading
	c.err = nil
	c.mu.Unlock()

	c.logger.Debug("loading")
	data, err := c.fetch(ctx)

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug("dropping stale result", slog.Uint64("gen", gen))
		if err != nil {
			return err
		}
		return ErrStale
	}
	if err != nil {
		c.status = StatusFailed
		c.err = err
		c.mu.Unlock()

		if c.handler != nil {
			c.handler.Handle(ctx, err)
		}
		return err
	}
	c.status = StatusReady
	c.data = data
	c.mu.Unlock()
	return nil
}

// Retry повторяет загрузку после ошибки
func (c *Controller[T]) Retry(ctx context.Context) error {
	c.mu.Lock()
	status := c.status
	c.mu.Unlock()

	if status != StatusFailed {
		return ErrNotFailed
	}
	return c.Load(ctx)
}

// Reload повторно загружает данные целиком, прошлые данные видны до ответа
func (c *Controller[T]) Reload(ctx context.Context) error {
	return c.Load(ctx)
}

// Snapshot возвращает текущее состояние
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{Status: c.status, Data: c.data, Err: c.err}
}

// Data возвращает последние загруженные данные
func (c *Controller[T]) Data() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Status возвращает состояние загрузки
func (c *Controller[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Update атомарно изменяет данные (локальные правки экрана)
func (c *Controller[T]) Update(f func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = f(c.data)
	return c.data
}

// Close отключает контроллер: результаты незавершенных загрузок отбрасываются
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
