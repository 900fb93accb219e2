package dashboard

import (
	"context"
	"log/slog"

	"github.com/iudanet/lmsdesk/internal/client/view"
	"github.com/iudanet/lmsdesk/internal/models"
)

// Profile - контроллер профиля студента (шапка дашборда)
type Profile struct {
	view *view.Controller[models.Profile]
	api  ProfileAPI
}

// NewProfile создает контроллер профиля
func NewProfile(api ProfileAPI, screen *Screen, logger *slog.Logger) *Profile {
	p := &Profile{api: api}
	p.view = view.New("profile", p.fetch, screen.Guard, logger)
	return p
}

func (p *Profile) fetch(ctx context.Context) (models.Profile, error) {
	rec, err := p.api.Profile(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	return models.ProfileFromRecord(*rec), nil
}

// Load загружает профиль
func (p *Profile) Load(ctx context.Context) error {
	return p.view.Load(ctx)
}

// Retry повторяет загрузку после ошибки
func (p *Profile) Retry(ctx context.Context) error {
	return p.view.Retry(ctx)
}

// Snapshot возвращает состояние загрузки
func (p *Profile) Snapshot() view.Snapshot[models.Profile] {
	return p.view.Snapshot()
}

// DisplayName возвращает имя для приветствия.
// До загрузки профиля это models.DefaultDisplayName.
func (p *Profile) DisplayName() string {
	return p.view.Data().DisplayName()
}

// Initials возвращает инициалы для аватара.
// До загрузки профиля это models.DefaultInitials.
func (p *Profile) Initials() string {
	profile := p.view.Data()
	return models.Initials(profile.FirstName + " " + profile.LastName)
}

// Close отключает контроллер от экрана
func (p *Profile) Close() {
	p.view.Close()
}
