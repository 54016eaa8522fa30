package account

import (
	"github.com/spf13/cobra"
)

// Cmd is the account command group
var Cmd = &cobra.Command{
	Use:   "account",
	Short: "Manage your account",
	Long:  `Inspect your account and wipe your company's service data.`,
}

func init() {
	Cmd.AddCommand(whoamiCmd)
	Cmd.AddCommand(wipeCmd)
}
