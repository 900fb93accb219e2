package notice

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder собирает события шины
type recorder struct {
	events []Event
	texts  []string
	mu     sync.Mutex
}

func (r *recorder) listen(n Notice, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	r.texts = append(r.texts, n.Text)
}

func (r *recorder) count(ev Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e == ev {
			n++
		}
	}
	return n
}

func TestBus_ShowAndExpire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	bus := NewBus(5*time.Second, WithClock(clock), WithListener(rec.listen))

	bus.Show("Added to bookmarks", KindSuccess)

	n, ok := bus.Current()
	require.True(t, ok)
	assert.Equal(t, Notice{Text: "Added to bookmarks", Kind: KindSuccess}, n)

	clock.Advance(4 * time.Second)
	_, ok = bus.Current()
	assert.True(t, ok)

	clock.Advance(time.Second)
	assert.Eventually(t, func() bool {
		_, visible := bus.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, rec.count(EventExpired))
}

func TestBus_ShowReplacesAndRestartsTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	bus := NewBus(3*time.Second, WithClock(clock), WithListener(rec.listen))

	bus.Show("first", KindInfo)
	clock.Advance(2 * time.Second)
	bus.Show("second", KindError)

	// Только второе сообщение видно
	n, ok := bus.Current()
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)

	// Таймер первого отменен: через 3с после первого Show ничего не скрывается
	clock.Advance(time.Second)
	assert.Never(t, func() bool {
		return rec.count(EventExpired) > 0
	}, 50*time.Millisecond, 5*time.Millisecond)
	n, ok = bus.Current()
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)

	// Ровно одно срабатывание таймера
	clock.Advance(2 * time.Second)
	assert.Eventually(t, func() bool {
		return rec.count(EventExpired) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool {
		return rec.count(EventExpired) > 1
	}, 50*time.Millisecond, 5*time.Millisecond)

	_, ok = bus.Current()
	assert.False(t, ok)
	assert.Equal(t, 2, rec.count(EventShown))
}

func TestBus_Clear(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	bus := NewBus(time.Second, WithClock(clock), WithListener(rec.listen))

	// Clear без уведомления ничего не делает
	bus.Clear()
	assert.Equal(t, 0, rec.count(EventDismissed))

	bus.Show("hello", KindInfo)
	bus.Clear()

	_, ok := bus.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, rec.count(EventDismissed))

	clock.Advance(2 * time.Second)
	assert.Never(t, func() bool {
		return rec.count(EventExpired) > 0
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestNewBus_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewBus(0).TTL())
	assert.Equal(t, ShortTTL, NewBus(ShortTTL).TTL())
}
