package console

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	whatsappApp "github.com/porticohq/portico/internal/whatsapp/application"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the connection live",
	Long: `Follow the monitoring surface in real time. Every change pushed by
the platform triggers a refresh. Stop with Ctrl+C.

Examples:
  portico console watch`,
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

		fmt.Println("Watching for changes (Ctrl+C to stop)...")
		err = app.Monitor.Run(ctx, company.CompanyID, func(snapshot *whatsappApp.Snapshot) {
			fmt.Printf("\n[%s] %d session(s)\n", snapshot.FetchedAt.Local().Format("15:04:05"), len(snapshot.Sessions))
			for _, session := range snapshot.Sessions {
				fmt.Printf("  %-16s %-14s %d message(s)\n",
					session.PhoneNumber,
					session.Status,
					len(snapshot.Messages[session.ID]),
				)
			}
		})
		if errors.Is(err, ctx.Err()) {
			fmt.Println("\nStopped.")
			return nil
		}
		return err
	},
}
