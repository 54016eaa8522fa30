package notices

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	notificationCommands "github.com/porticohq/portico/internal/notifications/application/commands"
	notificationQueries "github.com/porticohq/portico/internal/notifications/application/queries"
)

var unreadOnly bool

// Cmd is the notices command group
var Cmd = &cobra.Command{
	Use:   "notices",
	Short: "Show operator notices and maintenance windows",
	Long: `List announcements from the platform operator, including scheduled
maintenance.

Examples:
  portico notices
  portico notices --unread`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		result, err := app.ListNoticesHandler.Handle(ctx, notificationQueries.ListNoticesQuery{
			UserID:     app.CurrentUserID,
			UnreadOnly: unreadOnly,
		})
		if err != nil {
			return err
		}

		if result.Unread > 0 {
			fmt.Printf("%d unread notice(s)\n\n", result.Unread)
		}
		for _, notice := range result.Notices {
			marker := " "
			if !notice.Read() {
				marker = "●"
			}
			fmt.Printf("%s [%s] %s  (%s, %s)\n", marker, notice.Severity, notice.Title,
				notice.ID, notice.PublishedAt.Local().Format("2006-01-02"))
		}
		if len(result.Notices) == 0 {
			fmt.Println("No notices.")
		}

		windows, err := app.ListMaintenanceHandler.Handle(ctx, notificationQueries.ListMaintenanceQuery{})
		if err != nil {
			return err
		}
		if len(windows) > 0 {
			fmt.Println("\nMaintenance windows:")
			for _, entry := range windows {
				active := ""
				if entry.Active {
					active = " (active now)"
				}
				fmt.Printf("  %s - %s  %s%s\n",
					entry.Window.StartsAt.Local().Format(time.RFC822),
					entry.Window.EndsAt.Local().Format(time.RFC822),
					entry.Window.Reason,
					active,
				)
			}
		}
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <notice-id>",
	Short: "Mark a notice as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		noticeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid notice ID: %w", err)
		}

		err = app.MarkNoticeReadHandler.Handle(cmd.Context(), notificationCommands.MarkNoticeReadCommand{
			UserID:   app.CurrentUserID,
			NoticeID: noticeID,
		})
		if err != nil {
			return err
		}

		fmt.Println("✓ Notice marked read.")
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVar(&unreadOnly, "unread", false, "show unread notices only")
	Cmd.AddCommand(readCmd)
}
