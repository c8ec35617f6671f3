// Package cli implements the driveline command line interface.
package cli

import (
	"github.com/alexanderramin/driveline/internal/catalog"
	"github.com/alexanderramin/driveline/internal/recommend"
	"github.com/spf13/cobra"
)

// App holds the wired dependencies CLI commands run against.
type App struct {
	Vehicles     catalog.VehicleRepo
	Leads        catalog.LeadRepo
	Orchestrator *recommend.Orchestrator

	// IsInteractive reports whether stdin is a terminal; the recommend
	// wizard refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "driveline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "driveline",
		Short: "Vehicle recommendation and payment estimation",
	}

	root.AddCommand(
		newRecommendCmd(app),
		newCatalogCmd(app),
		newEstimateCmd(),
		newSafetyCmd(app),
		newServeCmd(app),
	)

	return root
}
