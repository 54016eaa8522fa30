package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/porticohq/portico/adapter/cli"
	catalogCommands "github.com/porticohq/portico/internal/catalog/application/commands"
	catalogQueries "github.com/porticohq/portico/internal/catalog/application/queries"
	"github.com/porticohq/portico/internal/catalog/domain"
)

var requestTier string

var requestCmd = &cobra.Command{
	Use:   "request <slug>",
	Short: "Request a service for your company",
	Long: `Submit a provisioning request for a service. The request goes to an
operator for review; a previous rejection does not block resubmitting.

Examples:
  portico services request seo
  portico services request website --tier pro`,
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

		var target *domain.DisplayState
		for i, state := range snapshot.States {
			if state.Type.Slug == slug {
				target = &snapshot.States[i]
				break
			}
		}
		if target == nil {
			return fmt.Errorf("unknown service %q", slug)
		}
		if target.Kind == domain.StateActive || target.Kind == domain.StateMaintenance {
			return fmt.Errorf("service %q is already booked", slug)
		}

		tier, err := resolveTier(requestTier, target.Type.PackageTiers)
		if err != nil {
			return err
		}

		request, err := app.SubmitRequestHandler.Handle(ctx, catalogCommands.SubmitRequestCommand{
			CompanyID:   company.CompanyID,
			TypeID:      target.Type.ID,
			Tier:        tier,
			RequestedBy: app.CurrentUserID,
		})
		if err != nil {
			if errors.Is(err, catalogCommands.ErrRequestAlreadyPending) {
				fmt.Printf("A request for %q is already pending review.\n", slug)
				return nil
			}
			return err
		}

		if request.Tier != "" {
			fmt.Printf("✓ Request submitted for %s, tier %s (id %s)\n", target.Type.Name(app.Locale), request.Tier, request.ID)
		} else {
			fmt.Printf("✓ Request submitted for %s (id %s)\n", target.Type.Name(app.Locale), request.ID)
		}
		fmt.Println("  An operator will review it shortly.")
		return nil
	},
}

// resolveTier validates the requested tier against the type's offered
// tiers. An empty request defaults to the first offered tier.
func resolveTier(requested string, offered []string) (string, error) {
	if requested == "" {
		if len(offered) > 0 {
			return offered[0], nil
		}
		return "", nil
	}
	for _, tier := range offered {
		if tier == requested {
			return requested, nil
		}
	}
	return "", fmt.Errorf("unknown tier %q (offered: %s)", requested, strings.Join(offered, ", "))
}

func init() {
	requestCmd.Flags().StringVar(&requestTier, "tier", "", "package tier to request (defaults to the first offered tier)")
}
