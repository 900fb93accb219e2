package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/internal/models"
	pkgapi "github.com/iudanet/lmsdesk/pkg/api"
)

func TestProfile_DefaultsBeforeLoad(t *testing.T) {
	f := newFixture(t, true)
	p := NewProfile(&ProfileAPIMock{}, f.screen, nil)

	assert.Equal(t, models.DefaultDisplayName, p.DisplayName())
	assert.Equal(t, models.DefaultInitials, p.Initials())
}

func TestProfile_Loaded(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := &ProfileAPIMock{
		ProfileFunc: func(ctx context.Context) (*pkgapi.ProfileRecord, error) {
			return &pkgapi.ProfileRecord{ID: "u1", FirstName: "asha", LastName: "rao"}, nil
		},
	}
	p := NewProfile(mockAPI, f.screen, nil)

	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, "asha", p.DisplayName())
	assert.Equal(t, "AR", p.Initials())
}

func TestProfile_SessionExpired(t *testing.T) {
	f := newFixture(t, true)
	mockAPI := &ProfileAPIMock{
		ProfileFunc: func(ctx context.Context) (*pkgapi.ProfileRecord, error) {
			return nil, unauthorized("fetch profile")
		},
	}
	p := NewProfile(mockAPI, f.screen, nil)

	require.Error(t, p.Load(context.Background()))

	// Шапка остается на значениях по умолчанию
	assert.Equal(t, models.DefaultDisplayName, p.DisplayName())
	assert.Equal(t, models.DefaultInitials, p.Initials())
	assert.Empty(t, f.token(t))
	assert.True(t, f.screen.Guard.LoggedOut())
}
