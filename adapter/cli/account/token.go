package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Show the backend session token status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}
		if app.Session == nil {
			fmt.Println("No backend session configured (PORTICO_AUTH_TOKEN_URL unset).")
			return nil
		}

		token, err := app.Session.Token(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Token:    valid\n")
		fmt.Printf("Type:     %s\n", token.TokenType)
		if !token.Expiry.IsZero() {
			fmt.Printf("Expires:  %s\n", token.Expiry.Local())
		}
		return nil
	},
}

func init() {
	Cmd.AddCommand(tokenCmd)
}
