package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/lmsdesk/internal/client/dashboard"
	"github.com/iudanet/lmsdesk/internal/models"
)

type bookmarksView struct {
	Courses []models.Course
	Total   int
	Hidden  int
	HasMore bool
}

func newBookmarksView(b *dashboard.Bookmarks) bookmarksView {
	displayed := b.Displayed()
	total := len(b.Snapshot().Data.Courses)
	return bookmarksView{
		Courses: displayed,
		Total:   total,
		Hidden:  total - len(displayed),
		HasMore: b.HasMore(),
	}
}

func (c *Cli) bookmarksCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "List bookmarked courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.courseScreen()

			bookmarks := dashboard.NewBookmarks(c.platform, screen, c.logger)
			defer bookmarks.Close()

			if err := c.retry(ctx, screen, bookmarks.Load); err != nil {
				return c.finish(screen, err)
			}
			if all {
				bookmarks.ShowAll()
			}

			if err := c.finish(screen, nil); err != nil {
				return err
			}
			return c.render("bookmarks", newBookmarksView(bookmarks))
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "show all bookmarks")
	return cmd
}

func (c *Cli) bookmarkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <course-id>",
		Short: "Bookmark a course, or remove the bookmark if it is already set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.courseScreen()

			bookmarks := dashboard.NewBookmarks(c.platform, screen, c.logger)
			defer bookmarks.Close()

			// Направление переключения берется из загруженного списка
			if err := screen.RequireCredential(ctx, "toggle bookmark"); err != nil {
				return c.finish(screen, err)
			}
			if err := bookmarks.Load(ctx); err != nil {
				return c.finish(screen, err)
			}

			_, err := bookmarks.Toggle(ctx, args[0])
			return c.finish(screen, err)
		},
	}
}
