package consent

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	"github.com/porticohq/portico/internal/consent/domain"
)

//go:embed disclosure.md
var disclosureText string

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the disclosure",
	Long: `Print the disclosure document and record that it was read to the
end. Accepting requires a complete read first.

Examples:
  portico consent read`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		fmt.Println(disclosureText)

		// The terminal printed the whole document, so the read is complete.
		lines := float64(strings.Count(disclosureText, "\n") + 1)
		progress := domain.ReadProgress{
			Offset:        lines,
			Viewport:      lines,
			ContentHeight: lines,
		}
		if err := app.Gatekeeper.SaveProgress(cmd.Context(), app.CurrentUserID, serviceTag, app.ConsentVer, progress); err != nil {
			return err
		}

		fmt.Printf("\nDisclosure read (%s, version %s). Accept with 'portico consent accept'.\n", serviceTag, app.ConsentVer)
		return nil
	},
}
