package services

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	catalogQueries "github.com/porticohq/portico/internal/catalog/application/queries"
	"github.com/porticohq/portico/internal/catalog/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one service in detail",
	Long: `Show the resolved state and detail surface of a single service.

Examples:
  portico services show whatsapp
  portico services show website`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}
		slug := args[0]

		ctx := cmd.Context()
		company, err := app.RequireCompany(ctx)
		if err != nil {
			return err
		}

		fetchCtx, cancel := app.SnapshotContext(ctx)
		defer cancel()
		snapshot, err := app.CatalogSnapshotHandler.Handle(fetchCtx, catalogQueries.CatalogSnapshotQuery{
			CompanyID: company.CompanyID,
			Locale:    app.Locale,
		})
		if err != nil {
			return err
		}

		for _, state := range snapshot.States {
			if state.Type.Slug != slug {
				continue
			}
			fmt.Printf("Service:   %s (%s)\n", state.Type.Name(app.Locale), state.Type.Slug)
			fmt.Printf("Category:  %s\n", state.Type.Category)
			fmt.Printf("State:     %s\n", state.Kind)
			if state.Kind == domain.StateActive || state.Kind == domain.StateMaintenance {
				fmt.Printf("Instances: %d\n", state.InstanceCount)
				if state.Tier != "" {
					fmt.Printf("Tier:      %s\n", state.Tier)
				}
			}
			if state.Kind == domain.StateRejected && state.ReviewNotes != "" {
				fmt.Printf("Rejected:  %s\n", state.ReviewNotes)
			}
			if len(state.Type.PackageTiers) > 0 {
				fmt.Printf("Tiers:     %v\n", state.Type.PackageTiers)
			}
			fmt.Printf("Route:     %s\n", domain.DetailFor(slug).Route())
			return nil
		}

		return fmt.Errorf("unknown service %q", slug)
	},
}
