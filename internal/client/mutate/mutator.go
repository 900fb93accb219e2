// Package mutate applies local state changes before the server confirms them.
package mutate

import (
	"context"
	"sync"
)

// Cell - атомарно обновляемое состояние экрана
type Cell[S any] interface {
	// Update применяет f к текущему состоянию и возвращает новое
	Update(f func(S) S) S
}

// Action описывает одно оптимистичное изменение
type Action[S any] struct {
	// Apply строит новое состояние из текущего.
	// Второе значение false означает, что менять нечего и запрос не нужен.
	Apply func(S) (S, bool)
	// Revert откатывает изменение поверх текущего состояния
	Revert func(S) S
	// Send отправляет изменение на сервер
	Send func(ctx context.Context) error
	// Key - ресурс, изменения которого отправляются строго по очереди
	Key string
}

// Status - стадия оптимистичного изменения
type Status int

const (
	StatusProvisional Status = iota
	StatusCommitted
	StatusReverted
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusProvisional:
		return "provisional"
	case StatusCommitted:
		return "committed"
	case StatusReverted:
		return "reverted"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Mutator применяет Action к Cell оптимистично.
// Изменения одного ключа отправляются в порядке вызова Mutate,
// изменения разных ключей не ждут друг друга.
type Mutator[S any] struct {
	cell Cell[S]
	// last[key] закрывается, когда завершится последнее изменение ключа
	last     map[string]chan struct{}
	mu       sync.Mutex
	inflight int
}

// New создает Mutator поверх состояния
func New[S any](cell Cell[S]) *Mutator[S] {
	return &Mutator[S]{
		cell: cell,
		last: make(map[string]chan struct{}),
	}
}

// Pending - примененное локально изменение, ожидающее Commit
type Pending[S any] struct {
	err    error
	m      *Mutator[S]
	prev   <-chan struct{}
	done   chan struct{}
	action Action[S]
	state  S
	once   sync.Once
	status Status
}

// Mutate применяет action к текущему состоянию немедленно.
// Каждый Pending со статусом provisional должен быть завершен через Commit,
// иначе следующие изменения того же ключа не будут отправлены.
func (m *Mutator[S]) Mutate(action Action[S]) *Pending[S] {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := false
	state := m.cell.Update(func(s S) S {
		next, ok := action.Apply(s)
		if !ok {
			return s
		}
		changed = true
		return next
	})

	p := &Pending[S]{m: m, action: action, state: state}
	if !changed {
		p.status = StatusSkipped
		return p
	}

	prev, ok := m.last[action.Key]
	if !ok {
		closed := make(chan struct{})
		close(closed)
		prev = closed
	}
	p.prev = prev
	p.done = make(chan struct{})
	p.status = StatusProvisional
	m.last[action.Key] = p.done
	m.inflight++
	return p
}

// Idle сообщает, что нет изменений в процессе отправки
func (m *Mutator[S]) Idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight == 0
}

// State возвращает состояние сразу после применения изменения
func (p *Pending[S]) State() S {
	return p.state
}

// Status возвращает текущую стадию изменения
func (p *Pending[S]) Status() Status {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return p.status
}

// Provisional сообщает, что изменение еще не подтверждено сервером
func (p *Pending[S]) Provisional() bool {
	return p.Status() == StatusProvisional
}

// Commit дожидается предыдущих изменений того же ключа и отправляет это.
// При ошибке изменение откатывается поверх текущего состояния.
// Повторов нет. Повторный вызов возвращает результат первого.
func (p *Pending[S]) Commit(ctx context.Context) error {
	p.once.Do(func() {
		p.err = p.commit(ctx)
	})
	return p.err
}

func (p *Pending[S]) commit(ctx context.Context) error {
	if p.status == StatusSkipped {
		return nil
	}
	defer p.m.finish(p)

	select {
	case <-p.prev:
	case <-ctx.Done():
		p.m.revert(p)
		return ctx.Err()
	}

	if err := p.action.Send(ctx); err != nil {
		p.m.revert(p)
		return err
	}

	p.m.mu.Lock()
	p.status = StatusCommitted
	p.m.mu.Unlock()
	return nil
}

// revert откатывает изменение, если после него ключ не менялся.
// Более позднее изменение ключа уже выразило новое намерение пользователя.
func (m *Mutator[S]) revert(p *Pending[S]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.status = StatusReverted
	if m.last[p.action.Key] != p.done {
		return
	}
	m.cell.Update(p.action.Revert)
}

// finish освобождает очередь ключа.
// Если изменение завершилось раньше предыдущего (отмена контекста),
// очередь освобождается только после предыдущего, чтобы не нарушить порядок.
func (m *Mutator[S]) finish(p *Pending[S]) {
	m.mu.Lock()
	m.inflight--
	m.mu.Unlock()

	release := func() {
		m.mu.Lock()
		close(p.done)
		if m.last[p.action.Key] == p.done {
			delete(m.last, p.action.Key)
		}
		m.mu.Unlock()
	}

	select {
	case <-p.prev:
		release()
	default:
		go func() {
			<-p.prev
			release()
		}()
	}
}
