package account

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	whatsappApp "github.com/porticohq/portico/internal/whatsapp/application"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Permanently delete your company's service data",
	Long: `Delete all of your company's WhatsApp data from the platform:
messages, sessions, profiles, and error logs, in that order.

This cannot be undone. If the wipe is interrupted, running it again
resumes at the first incomplete step.

Examples:
  portico account wipe
  portico account wipe --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		company, err := app.RequireCompany(ctx)
		if err != nil {
			return err
		}

		if !wipeYes {
			reader := bufio.NewReader(os.Stdin)

			fmt.Print("This permanently deletes all service data. Continue? [y/N]: ")
			line, _ := reader.ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}

			fmt.Print("There is no way to recover deleted data. Type 'wipe' to confirm: ")
			line, _ = reader.ReadString('\n')
			if strings.TrimSpace(line) != "wipe" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		err = app.Wiper.Wipe(ctx, company.CompanyID)
		if err != nil {
			if errors.Is(err, whatsappApp.ErrPartialWipe) {
				fmt.Println("⚠ The wipe did not finish. Run the command again to resume.")
			}
			return err
		}

		fmt.Println("✓ All service data deleted.")
		return nil
	},
}

func init() {
	wipeCmd.Flags().BoolVarP(&wipeYes, "yes", "y", false, "skip the confirmation prompt")
}
