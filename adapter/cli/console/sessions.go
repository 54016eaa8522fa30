package console

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List WhatsApp sessions",
	Long: `List your company's WhatsApp sessions with their connection status.

Examples:
  portico console sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		if err := requireConsent(ctx, app); err != nil {
			return err
		}
		company, err := app.RequireCompany(ctx)
		if err != nil {
			return err
		}

		snapshot, err := app.Monitor.Fetch(ctx, company.CompanyID)
		if err != nil {
			return err
		}
		if snapshot == nil {
			return fmt.Errorf("snapshot superseded, try again")
		}

		if len(snapshot.Sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		fmt.Printf("%-38s %-16s %-14s %s\n", "ID", "NUMBER", "STATUS", "LAST SEEN")
		for _, session := range snapshot.Sessions {
			fmt.Printf("%-38s %-16s %-14s %s\n",
				session.ID,
				session.PhoneNumber,
				session.Status,
				session.LastSeenAt.Local().Format(time.RFC822),
			)
		}
		return nil
	},
}
