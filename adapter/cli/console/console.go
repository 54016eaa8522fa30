package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	"github.com/porticohq/portico/internal/consent/domain"
)

// Cmd is the console command group
var Cmd = &cobra.Command{
	Use:   "console",
	Short: "Monitor your WhatsApp connection",
	Long:  `Inspect sessions and messages, and watch the connection live.`,
}

func init() {
	Cmd.AddCommand(sessionsCmd)
	Cmd.AddCommand(messagesCmd)
	Cmd.AddCommand(watchCmd)
}

// requireConsent opens the console only behind an accepted disclosure.
func requireConsent(ctx context.Context, app *cli.App) error {
	state, err := app.Gatekeeper.Check(ctx, app.CurrentUserID, "whatsapp", app.ConsentVer)
	if err != nil {
		return fmt.Errorf("could not verify consent: %w", err)
	}
	if state != domain.GateGranted {
		return fmt.Errorf("the console requires an accepted disclosure; run 'portico consent read' and 'portico consent accept'")
	}
	return nil
}
