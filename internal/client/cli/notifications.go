package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/lmsdesk/internal/client/dashboard"
	"github.com/iudanet/lmsdesk/internal/models"
)

type notificationsView struct {
	Items []models.Notification
	Count int
}

func newNotificationsView(n *dashboard.Notifications) notificationsView {
	return notificationsView{Items: n.Items(), Count: n.Count()}
}

func (c *Cli) notificationsCommand() *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List unread notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.screen()

			notifications := dashboard.NewNotifications(c.platform, screen, c.logger, page, limit)
			defer notifications.Close()

			if err := c.retry(ctx, screen, notifications.Load); err != nil {
				return c.finish(screen, err)
			}
			if err := c.finish(screen, nil); err != nil {
				return err
			}
			return c.render("notifications", newNotificationsView(notifications))
		},
	}
	cmd.Flags().IntVar(&page, "page", dashboard.DefaultNotificationsPage, "page number")
	cmd.Flags().IntVar(&limit, "limit", dashboard.DefaultNotificationsLimit, "notifications per page")
	return cmd
}

func (c *Cli) readCommand() *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.screen()

			notifications := dashboard.NewNotifications(c.platform, screen, c.logger, page, limit)
			defer notifications.Close()

			if err := notifications.Load(ctx); err != nil {
				return c.finish(screen, err)
			}

			id := args[0]
			found := false
			for _, item := range notifications.Items() {
				if item.ID == id {
					found = true
					break
				}
			}
			if !found {
				screen.Close()
				return fmt.Errorf("notification %s is not among unread notifications on page %d", id, page)
			}

			if err := notifications.MarkRead(ctx, id); err != nil {
				return c.finish(screen, err)
			}
			if err := c.finish(screen, nil); err != nil {
				return err
			}
			c.io.Printf("✓ Marked as read. %d unread left.\n", notifications.Count())
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", dashboard.DefaultNotificationsPage, "page containing the notification")
	cmd.Flags().IntVar(&limit, "limit", dashboard.DefaultNotificationsLimit, "notifications per page")
	return cmd
}

func (c *Cli) readAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark all notifications as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			screen := c.screen()

			notifications := dashboard.NewNotifications(c.platform, screen, c.logger, 0, 0)
			defer notifications.Close()

			if err := notifications.Load(ctx); err != nil {
				return c.finish(screen, err)
			}
			// Счетчик обнуляется сразу, ответ сервера только дожидаемся
			if err := <-notifications.MarkAllRead(ctx); err != nil {
				return c.finish(screen, err)
			}
			if err := c.finish(screen, nil); err != nil {
				return err
			}
			c.io.Println("✓ All notifications marked as read")
			return nil
		},
	}
}
