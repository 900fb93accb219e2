package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/lmsdesk/internal/client/dashboard"
	"github.com/iudanet/lmsdesk/internal/models"
)

type profileView struct {
	Name     string
	Initials string
	Profile  models.Profile
}

func newProfileView(p *dashboard.Profile) profileView {
	return profileView{
		Name:     p.DisplayName(),
		Initials: p.Initials(),
		Profile:  p.Snapshot().Data,
	}
}

func (c *Cli) profileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the student profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.screen()

			profile := dashboard.NewProfile(c.platform, screen, c.logger)
			defer profile.Close()

			if err := c.retry(ctx, screen, profile.Load); err != nil {
				return c.finish(screen, err)
			}
			if err := c.finish(screen, nil); err != nil {
				return err
			}
			return c.render("profile", newProfileView(profile))
		},
	}
}
