package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	"github.com/porticohq/portico/internal/whatsapp/domain"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Show recent messages",
	Long: `Show the most recent messages across your company's sessions.

Examples:
  portico console messages`,
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

		total := 0
		for _, session := range snapshot.Sessions {
			messages := snapshot.Messages[session.ID]
			if len(messages) == 0 {
				continue
			}
			fmt.Printf("\nSession %s (%s)\n", session.PhoneNumber, session.Status)
			for _, message := range messages {
				fmt.Printf("  %s %s %-16s %s\n",
					message.SentAt.Local().Format("15:04"),
					directionArrow(message.Direction),
					message.PeerNumber,
					message.Body,
				)
			}
			total += len(messages)
		}
		if total == 0 {
			fmt.Println("No messages yet.")
		}
		return nil
	},
}

func directionArrow(d domain.MessageDirection) string {
	if d == domain.DirectionOutbound {
		return "→"
	}
	return "←"
}
