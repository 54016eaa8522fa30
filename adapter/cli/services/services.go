package services

import (
	"github.com/spf13/cobra"
)

// Cmd is the services command group
var Cmd = &cobra.Command{
	Use:   "services",
	Short: "Inspect and request services",
	Long:  `List the service catalog, show a single service, and request new ones.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(requestCmd)
}
