package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user and company",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		user, err := app.UserRepo.GetByID(ctx, app.CurrentUserID)
		if err != nil {
			return err
		}
		fmt.Printf("User:     %s <%s>\n", user.FullName, user.Email)

		company, err := app.Company(ctx)
		if err != nil {
			return err
		}
		if !company.HasCompany {
			fmt.Println("Company:  (none yet)")
			return nil
		}
		fmt.Printf("Company:  %s\n", company.CompanyID)
		fmt.Printf("Role:     %s\n", company.Role)
		return nil
	},
}
