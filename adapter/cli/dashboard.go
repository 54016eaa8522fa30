package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	catalogQueries "github.com/porticohq/portico/internal/catalog/application/queries"
	"github.com/porticohq/portico/internal/catalog/domain"
	"github.com/porticohq/portico/internal/navigation"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the service dashboard",
	Long: `Display the classified state of every service in the catalog for
your company, plus the resulting navigation.

Examples:
  portico dashboard`,
	Aliases: []string{"dash", "home"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		ctx := cmd.Context()
		company, err := app.Company(ctx)
		if err != nil {
			return err
		}
		if !company.HasCompany {
			fmt.Println("Your account has no company yet.")
			fmt.Println("Ask your operator to complete onboarding, then try again.")
			return nil
		}

		fetchCtx, cancel := app.SnapshotContext(ctx)
		defer cancel()
		snapshot, err := app.CatalogSnapshotHandler.Handle(fetchCtx, catalogQueries.CatalogSnapshotQuery{
			CompanyID: company.CompanyID,
			Locale:    app.Locale,
		})
		// A failed fetch still renders the navigation shell with the
		// generic fallback entry instead of breaking the dashboard.
		var states []domain.DisplayState
		if err != nil {
			snapshot = nil
			fmt.Println()
			fmt.Println("  ⚠ could not load services; retry with: portico dashboard")
		} else {
			states = snapshot.States
		}

		fmt.Println()
		fmt.Println("  Services")
		fmt.Println(strings.Repeat("═", 60))
		if snapshot != nil && snapshot.Partial {
			fmt.Printf("  ⚠ some data is unavailable (%s); showing what loaded\n\n",
				strings.Join(snapshot.FailedCollections, ", "))
		}

		for _, state := range states {
			fmt.Printf("  %-10s %-28s%s\n", stateGlyph(state.Kind), state.Type.Name(app.Locale), stateDetail(state))
		}
		if len(states) == 0 {
			fmt.Println("  (no services available)")
		}

		fmt.Println()
		fmt.Println("  Navigation")
		fmt.Println(strings.Repeat("─", 60))
		for _, entry := range navigation.Assemble(states, company.Role, app.Locale) {
			badge := ""
			if entry.Badge > 0 {
				badge = fmt.Sprintf(" (%d)", entry.Badge)
			}
			fmt.Printf("  %-24s %s%s\n", entry.Route, entry.Title, badge)
		}
		fmt.Println()
		return nil
	},
}

func stateGlyph(kind domain.StateKind) string {
	switch kind {
	case domain.StateActive:
		return "✓ active"
	case domain.StateMaintenance:
		return "⚠ maint"
	case domain.StatePending:
		return "… pending"
	case domain.StateRejected:
		return "✗ rejected"
	default:
		return "+ open"
	}
}

func stateDetail(state domain.DisplayState) string {
	switch state.Kind {
	case domain.StateActive, domain.StateMaintenance:
		detail := fmt.Sprintf("%d instance(s)", state.InstanceCount)
		if state.Tier != "" {
			detail += ", tier " + state.Tier
		}
		return "  " + detail
	case domain.StateRejected:
		if state.ReviewNotes != "" {
			return "  " + state.ReviewNotes
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
