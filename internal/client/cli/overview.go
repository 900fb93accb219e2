package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/lmsdesk/internal/client/api"
	"github.com/iudanet/lmsdesk/internal/client/dashboard"
)

type overviewView struct {
	Name          string
	Initials      string
	Bookmarks     bookmarksView
	Notifications notificationsView
	Interests     interestsView
	Unread        int
}

func (c *Cli) overviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard: profile, bookmarks, notifications and interests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOverview(cmd.Context())
		},
	}
}

func (c *Cli) runOverview(ctx context.Context) error {
	screen := c.screen()

	profile := dashboard.NewProfile(c.platform, screen, c.logger)
	defer profile.Close()
	bookmarks := dashboard.NewBookmarks(c.platform, screen, c.logger)
	defer bookmarks.Close()
	notifications := dashboard.NewNotifications(c.platform, screen, c.logger, 0, 0)
	defer notifications.Close()
	interests, err := dashboard.NewInterests(ctx, c.platform, c.kv, screen, c.logger)
	if err != nil {
		screen.Close()
		return err
	}
	defer interests.Close()

	// Разделы загружаются параллельно. Ошибка раздела показывается уведомлением
	// и не мешает остальным, Guard завершает сессию один раз.
	var g errgroup.Group
	for _, load := range []func(context.Context) error{
		profile.Load,
		bookmarks.Load,
		notifications.Load,
		interests.Load,
	} {
		g.Go(func() error {
			if err := load(ctx); api.IsKind(err, api.KindAuthentication) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.finish(screen, err)
	}
	if err := c.finish(screen, nil); err != nil {
		return err
	}

	return c.render("overview", overviewView{
		Name:          profile.DisplayName(),
		Initials:      profile.Initials(),
		Unread:        notifications.Count(),
		Bookmarks:     newBookmarksView(bookmarks),
		Notifications: newNotificationsView(notifications),
		Interests:     newInterestsView(interests),
	})
}
