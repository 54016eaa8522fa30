package consent

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	consentApp "github.com/porticohq/portico/internal/consent/application"
)

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept the disclosure",
	Long: `Record consent for the current disclosure version. The gate only
opens after the platform has confirmed the write.

Examples:
  portico consent accept`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		company, err := app.RequireCompany(cmd.Context())
		if err != nil {
			return err
		}

		err = app.Gatekeeper.Accept(cmd.Context(), app.CurrentUserID, company.CompanyID, serviceTag, app.ConsentVer)
		if err != nil {
			if errors.Is(err, consentApp.ErrDisclosureNotRead) {
				fmt.Println("You need to read the disclosure first: portico consent read")
				return nil
			}
			return err
		}

		fmt.Printf("✓ Consent recorded (%s, version %s)\n", serviceTag, app.ConsentVer)
		return nil
	},
}
