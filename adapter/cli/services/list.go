package services

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	catalogQueries "github.com/porticohq/portico/internal/catalog/application/queries"
	"github.com/porticohq/portico/internal/catalog/domain"
)

var filterState string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List services and their state",
	Long: `List every service in the catalog with its resolved state for your
company.

Examples:
  portico services list
  portico services list --state requestable`,
	Aliases: []string{"ls"},
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

		fetchCtx, cancel := app.SnapshotContext(ctx)
		defer cancel()
		snapshot, err := app.CatalogSnapshotHandler.Handle(fetchCtx, catalogQueries.CatalogSnapshotQuery{
			CompanyID: company.CompanyID,
			Locale:    app.Locale,
		})
		if err != nil {
			return err
		}

		if snapshot.Partial {
			fmt.Printf("⚠ some data is unavailable (%s)\n", strings.Join(snapshot.FailedCollections, ", "))
		}

		fmt.Printf("%-24s %-12s %-10s %s\n", "SERVICE", "STATE", "INSTANCES", "NOTES")
		for _, state := range snapshot.States {
			if filterState != "" && string(state.Kind) != filterState {
				continue
			}
			instances := ""
			if state.Kind == domain.StateActive || state.Kind == domain.StateMaintenance {
				instances = fmt.Sprintf("%d", state.InstanceCount)
			}
			fmt.Printf("%-24s %-12s %-10s %s\n",
				state.Type.Name(app.Locale),
				state.Kind,
				instances,
				state.ReviewNotes,
			)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&filterState, "state", "", "filter by state (active, maintenance, pending, rejected, requestable)")
}
