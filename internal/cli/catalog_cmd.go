package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/driveline/internal/catalog"
	"github.com/alexanderramin/driveline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the vehicle catalog",
	}
	cmd.AddCommand(newCatalogImportCmd(app), newCatalogListCmd(app))
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import vehicles from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := catalog.ImportFile(context.Background(), app.Vehicles, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d vehicle(s).\n", res.Imported)
			for _, s := range res.Skipped {
				fmt.Printf("Skipped %s\n", s)
			}
			return nil
		},
	}
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicles, err := app.Vehicles.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatVehicleList(vehicles))
			return nil
		},
	}
}
