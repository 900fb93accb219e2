package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/lmsdesk/internal/client/auth"
)

type statusView struct {
	*auth.Status
	Remaining time.Duration
}

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.auth.Status(cmd.Context())
			if err != nil {
				return err
			}

			view := statusView{Status: status}
			if status.Claims != nil && !status.Claims.ExpiresAt.IsZero() && !status.Expired {
				view.Remaining = status.Claims.ExpiresAt.Sub(c.clock.Now()).Round(time.Second)
			}
			return c.render("status", view)
		},
	}
}
