package consent

import (
	"github.com/spf13/cobra"
)

// Cmd is the consent command group
var Cmd = &cobra.Command{
	Use:   "consent",
	Short: "Manage service disclosures",
	Long:  `Check, read, and accept the disclosures that gate service surfaces.`,
}

var serviceTag string

func init() {
	Cmd.PersistentFlags().StringVar(&serviceTag, "service", "whatsapp", "service the disclosure covers")
	Cmd.AddCommand(statusCmd)
	Cmd.AddCommand(readCmd)
	Cmd.AddCommand(acceptCmd)
}
