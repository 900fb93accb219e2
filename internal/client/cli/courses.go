package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/lmsdesk/internal/client/dashboard"
	"github.com/iudanet/lmsdesk/internal/models"
)

type coursesView struct {
	Interesting map[string]bool // по ID курса
	Courses     []models.Course
	Marked      bool
}

type courseView struct {
	Expanded string
	Course   models.Course
	Stats    dashboard.CurriculumStats
}

func (c *Cli) coursesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List the course catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.courseScreen()

			interests, err := dashboard.NewInterests(ctx, c.platform, c.kv, screen, c.logger)
			if err != nil {
				screen.Close()
				return err
			}
			defer interests.Close()

			if err := c.retry(ctx, screen, interests.Load); err != nil {
				return c.finish(screen, err)
			}

			view := coursesView{
				Interesting: make(map[string]bool),
				Courses:     interests.Snapshot().Data,
			}
			for _, course := range view.Courses {
				if interests.Has(course.Category) {
					view.Interesting[course.ID] = true
					view.Marked = true
				}
			}
			if err := c.finish(screen, nil); err != nil {
				return err
			}
			return c.render("courses", view)
		},
	}
}

func (c *Cli) courseCommand() *cobra.Command {
	var expand string
	cmd := &cobra.Command{
		Use:   "course <id>",
		Short: "Show course details and curriculum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.courseScreen()

			detail := dashboard.NewCourseDetail(c.platform, args[0], screen, c.logger)
			defer detail.Close()

			if err := c.retry(ctx, screen, detail.Load); err != nil {
				return c.finish(screen, err)
			}
			if expand != "" {
				detail.ToggleModule(expand)
			}

			if err := c.finish(screen, nil); err != nil {
				return err
			}
			return c.render("course", courseView{
				Course:   detail.Course(),
				Expanded: detail.Expanded(),
				Stats:    detail.Stats(),
			})
		},
	}
	cmd.Flags().StringVar(&expand, "expand", "", "ID of the module to expand")
	return cmd
}

