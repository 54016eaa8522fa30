package consent

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	"github.com/porticohq/portico/internal/consent/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the consent gate state",
	Long: `Check whether the current disclosure version has been accepted.

Examples:
  portico consent status
  portico consent status --service whatsapp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		state, err := app.Gatekeeper.Check(cmd.Context(), app.CurrentUserID, serviceTag, app.ConsentVer)
		if err != nil {
			fmt.Printf("Consent:  %s (lookup failed: %v)\n", state, err)
			return nil
		}

		switch state {
		case domain.GateGranted:
			fmt.Printf("Consent:  granted (%s, version %s)\n", serviceTag, app.ConsentVer)
		default:
			fmt.Printf("Consent:  not granted (%s, version %s)\n", serviceTag, app.ConsentVer)
			fmt.Println("Run 'portico consent read' then 'portico consent accept'.")
		}
		return nil
	},
}
