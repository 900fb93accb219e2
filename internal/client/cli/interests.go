package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/lmsdesk/internal/client/dashboard"
	"github.com/iudanet/lmsdesk/internal/models"
)

type interestsView struct {
	Interests []string
	Courses   []models.Course
}

type categoriesView struct {
	Categories []string
	Hidden     int
}

func newInterestsView(i *dashboard.Interests) interestsView {
	return interestsView{Interests: i.Interests(), Courses: i.AssociatedCourses()}
}

func (c *Cli) interestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interests",
		Short: "Show chosen categories and matching courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withInterests(cmd.Context(), true, func(i *dashboard.Interests) error {
				return c.render("interests", newInterestsView(i))
			})
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <category>",
			Short: "Add a category to interests",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withInterests(cmd.Context(), false, func(i *dashboard.Interests) error {
					if err := i.Add(cmd.Context(), args[0]); err != nil {
						return err
					}
					c.io.Printf("✓ Added %q to interests\n", args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove <category>",
			Short: "Remove a category from interests",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withInterests(cmd.Context(), false, func(i *dashboard.Interests) error {
					if err := i.Remove(cmd.Context(), args[0]); err != nil {
						return err
					}
					c.io.Printf("✓ Removed %q from interests\n", args[0])
					return nil
				})
			},
		},
		c.categoriesCommand(),
	)
	return cmd
}

func (c *Cli) categoriesCommand() *cobra.Command {
	var (
		search string
		all    bool
	)
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories that are not chosen yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withInterests(cmd.Context(), true, func(i *dashboard.Interests) error {
				if all {
					i.ToggleShowAll()
				}
				visible := i.VisibleCategories(search)
				return c.render("categories", categoriesView{
					Categories: visible,
					Hidden:     len(i.Categories(search)) - len(visible),
				})
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter categories by substring")
	cmd.Flags().BoolVar(&all, "all", false, "show all categories")
	return cmd
}

// withInterests открывает экран интересов; load загружает каталог перед fn
func (c *Cli) withInterests(ctx context.Context, load bool, fn func(*dashboard.Interests) error) error {
	screen := c.screen()

	interests, err := dashboard.NewInterests(ctx, c.platform, c.kv, screen, c.logger)
	if err != nil {
		screen.Close()
		return err
	}
	defer interests.Close()

	if load {
		if err := c.retry(ctx, screen, interests.Load); err != nil {
			return c.finish(screen, err)
		}
	}
	if err := c.finish(screen, nil); err != nil {
		return err
	}
	return fn(interests)
}
