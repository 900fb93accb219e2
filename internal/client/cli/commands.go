package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Command собирает дерево команд клиента
func (c *Cli) Command() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "lmsdesk",
		Short:         "Learner dashboard client",
		Long:          "lmsdesk shows the courses, bookmarks, notifications and interests of a student.",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("log-level") {
				c.cfg.LogLevel = logLevel
				c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.cfg.Level()}))
			}
			return c.open(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfg.DBPath, "db", c.cfg.DBPath, "path to local database")
	flags.StringVar(&c.cfg.StudentsURL, "students-url", c.cfg.StudentsURL, "students service URL")
	flags.StringVar(&c.cfg.CatalogURL, "catalog-url", c.cfg.CatalogURL, "catalog and auth service URL")
	flags.StringVar(&c.cfg.NotificationsURL, "notifications-url", c.cfg.NotificationsURL, "notifications service URL")
	flags.DurationVar(&c.cfg.RequestTimeout, "timeout", c.cfg.RequestTimeout, "request timeout")
	flags.StringVar(&logLevel, "log-level", c.cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.coursesCommand(),
		c.courseCommand(),
		c.bookmarksCommand(),
		c.bookmarkCommand(),
		c.notificationsCommand(),
		c.readCommand(),
		c.readAllCommand(),
		c.interestsCommand(),
		c.profileCommand(),
		c.overviewCommand(),
	)
	return root
}
