package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			c.io.Println("✓ Logged out")
			return nil
		},
	}
}
