// Package notice implements the single transient message slot shown by a screen.
package notice

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Kind - вид уведомления
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Длительность показа по умолчанию
const (
	DefaultTTL = 5 * time.Second
	ShortTTL   = 3 * time.Second
)

// Notice - сообщение для пользователя
type Notice struct {
	Text string
	Kind Kind
}

// Event - что произошло со слотом уведомления
type Event int

const (
	EventShown Event = iota
	EventDismissed
	EventExpired
)

// Listener получает изменения слота. Вызывается вне блокировок шины.
type Listener func(n Notice, ev Event)

// Bus хранит не более одного видимого уведомления.
// Новый Show заменяет текущее и перезапускает единственный таймер скрытия.
type Bus struct {
	clock    clockwork.Clock
	timer    clockwork.Timer
	listener Listener
	current  Notice
	ttl      time.Duration
	seq      uint64
	mu       sync.Mutex
	visible  bool
}

// Option настраивает Bus
type Option func(*Bus)

// WithClock задает часы (в тестах clockwork.NewFakeClock)
func WithClock(clock clockwork.Clock) Option {
	return func(b *Bus) {
		b.clock = clock
	}
}

// WithListener подписывает на изменения слота
func WithListener(l Listener) Option {
	return func(b *Bus) {
		b.listener = l
	}
}

// NewBus создает шину с заданной длительностью показа
func NewBus(ttl time.Duration, opts ...Option) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b := &Bus{
		clock: clockwork.NewRealClock(),
		ttl:   ttl,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// TTL возвращает длительность показа
func (b *Bus) TTL() time.Duration {
	return b.ttl
}

// Show показывает уведомление, заменяя текущее.
// Таймер предыдущего уведомления отменяется.
func (b *Bus) Show(text string, kind Kind) {
	n := Notice{Text: text, Kind: kind}

	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.seq++
	seq := b.seq
	b.current = n
	b.visible = true
	b.timer = b.clock.AfterFunc(b.ttl, func() {
		b.expire(seq)
	})
	b.mu.Unlock()

	b.notify(n, EventShown)
}

// Clear скрывает текущее уведомление
func (b *Bus) Clear() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if !b.visible {
		b.mu.Unlock()
		return
	}
	b.seq++
	n := b.current
	b.visible = false
	b.current = Notice{}
	b.mu.Unlock()

	b.notify(n, EventDismissed)
}

// Current возвращает видимое уведомление
func (b *Bus) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.visible
}

// expire скрывает уведомление, если за это время не было нового Show
func (b *Bus) expire(seq uint64) {
	b.mu.Lock()
	if seq != b.seq || !b.visible {
		b.mu.Unlock()
		return
	}
	n := b.current
	b.visible = false
	b.current = Notice{}
	b.timer = nil
	b.mu.Unlock()

	b.notify(n, EventExpired)
}

func (b *Bus) notify(n Notice, ev Event) {
	if b.listener != nil {
		b.listener(n, ev)
	}
}
