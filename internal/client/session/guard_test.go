package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/client/notice"
)

type guardFixture struct {
	creds   *CredentialClearerMock
	notices *NotifierMock
	nav     *NavigatorMock
	clock   *clockwork.FakeClock
	guard   *Guard
}

func newGuardFixture() *guardFixture {
	f := &guardFixture{
		creds: &CredentialClearerMock{
			ClearFunc: func(ctx context.Context) error { return nil },
		},
		notices: &NotifierMock{
			ShowFunc: func(text string, kind notice.Kind) {},
		},
		nav: &NavigatorMock{
			NavigateFunc: func(route string) {},
		},
		clock: clockwork.NewFakeClock(),
	}
	f.guard = NewGuard(f.creds, f.notices, f.nav, WithClock(f.clock))
	return f
}

func unauthorized() error {
	return &api.Error{Op: "fetch bookmarks", Kind: api.KindAuthentication, Status: 401, Message: "Unauthorized"}
}

func TestGuard_AuthenticationFailure(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()

	outcome := f.guard.Handle(ctx, unauthorized())
	assert.Equal(t, OutcomeLoggedOut, outcome)
	assert.True(t, f.guard.LoggedOut())

	// Токен удален, показано одно уведомление об ошибке
	assert.Len(t, f.creds.ClearCalls(), 1)
	require.Len(t, f.notices.ShowCalls(), 1)
	assert.Equal(t, MsgSessionExpired, f.notices.ShowCalls()[0].Text)
	assert.Equal(t, notice.KindError, f.notices.ShowCalls()[0].Kind)

	// Переход не раньше задержки
	f.clock.Advance(DefaultRedirectDelay - time.Millisecond)
	assert.Never(t, func() bool {
		return len(f.nav.NavigateCalls()) > 0
	}, 50*time.Millisecond, 5*time.Millisecond)

	f.clock.Advance(time.Millisecond)
	assert.Eventually(t, func() bool {
		return len(f.nav.NavigateCalls()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, LoginRoute, f.nav.NavigateCalls()[0].Route)
}

func TestGuard_RepeatedAuthenticationFailures(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()

	// Несколько параллельных запросов экрана получили 401
	for i := 0; i < 3; i++ {
		assert.Equal(t, OutcomeLoggedOut, f.guard.Handle(ctx, unauthorized()))
	}

	f.clock.Advance(10 * DefaultRedirectDelay)
	assert.Eventually(t, func() bool {
		return len(f.nav.NavigateCalls()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool {
		return len(f.nav.NavigateCalls()) > 1
	}, 50*time.Millisecond, 5*time.Millisecond)

	assert.Len(t, f.creds.ClearCalls(), 1)
	assert.Len(t, f.notices.ShowCalls(), 1)
}

func TestGuard_CloseCancelsNavigation(t *testing.T) {
	f := newGuardFixture()

	f.guard.Handle(context.Background(), unauthorized())
	f.guard.Close()

	f.clock.Advance(DefaultRedirectDelay)
	assert.Never(t, func() bool {
		return len(f.nav.NavigateCalls()) > 0
	}, 50*time.Millisecond, 5*time.Millisecond)

	// Flush после Close тоже ничего не делает
	f.guard.Flush()
	assert.Empty(t, f.nav.NavigateCalls())
}

func TestGuard_Flush(t *testing.T) {
	f := newGuardFixture()

	// Без запланированного перехода Flush ничего не делает
	f.guard.Flush()
	assert.Empty(t, f.nav.NavigateCalls())

	f.guard.Handle(context.Background(), unauthorized())
	f.guard.Flush()
	require.Len(t, f.nav.NavigateCalls(), 1)

	// Таймер остановлен, второго перехода нет
	f.clock.Advance(DefaultRedirectDelay)
	assert.Never(t, func() bool {
		return len(f.nav.NavigateCalls()) > 1
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestGuard_CustomDelay(t *testing.T) {
	f := newGuardFixture()
	f.guard = NewGuard(f.creds, f.notices, f.nav, WithClock(f.clock), WithRedirectDelay(5*time.Second))

	f.guard.Handle(context.Background(), unauthorized())
	f.clock.Advance(DefaultRedirectDelay)
	assert.Never(t, func() bool {
		return len(f.nav.NavigateCalls()) > 0
	}, 50*time.Millisecond, 5*time.Millisecond)

	f.clock.Advance(3 * time.Second)
	assert.Eventually(t, func() bool {
		return len(f.nav.NavigateCalls()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestGuard_ClearFailureStillRedirects(t *testing.T) {
	f := newGuardFixture()
	f.creds.ClearFunc = func(ctx context.Context) error { return errors.New("storage is closed") }

	assert.Equal(t, OutcomeLoggedOut, f.guard.Handle(context.Background(), unauthorized()))
	f.guard.Flush()
	assert.Len(t, f.nav.NavigateCalls(), 1)
}

func TestGuard_NonAuthenticationFailures(t *testing.T) {
	tests := []struct {
		err      error
		name     string
		wantText string
	}{
		{
			name:     "precondition",
			err:      &api.Error{Kind: api.KindPrecondition, Message: "whatever", Err: api.ErrNoCredential},
			wantText: MsgAuthRequired,
		},
		{
			name:     "business",
			err:      &api.Error{Kind: api.KindBusiness, Status: 404, Message: "Course not found"},
			wantText: "Course not found",
		},
		{
			name:     "transport",
			err:      &api.Error{Kind: api.KindTransport, Message: api.MsgRequestTimeout},
			wantText: api.MsgRequestTimeout,
		},
		{
			name:     "plain error",
			err:      errors.New("failed to persist interests"),
			wantText: "failed to persist interests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuardFixture()

			outcome := f.guard.Handle(context.Background(), tt.err)
			assert.Equal(t, OutcomeNotified, outcome)
			assert.False(t, f.guard.LoggedOut())

			require.Len(t, f.notices.ShowCalls(), 1)
			assert.Equal(t, tt.wantText, f.notices.ShowCalls()[0].Text)
			assert.Equal(t, notice.KindError, f.notices.ShowCalls()[0].Kind)

			// Без ухода из сессии
			assert.Empty(t, f.creds.ClearCalls())
			f.guard.Flush()
			assert.Empty(t, f.nav.NavigateCalls())
		})
	}
}

func TestGuard_NilError(t *testing.T) {
	f := newGuardFixture()
	assert.Equal(t, OutcomeNone, f.guard.Handle(context.Background(), nil))
	assert.Empty(t, f.notices.ShowCalls())
}
