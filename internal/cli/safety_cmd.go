package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/driveline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSafetyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "safety <vehicle-id>",
		Short: "Show the standalone safety assessment for a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Vehicles.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSafetyReport(v))
			return nil
		},
	}
}
