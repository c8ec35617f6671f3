package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/driveline/internal/cli/formatter"
	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/alexanderramin/driveline/internal/engine"
	"github.com/alexanderramin/driveline/internal/recommend"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var (
		interactive  bool
		strategy     string
		budgetType   string
		budgetAmount float64
		bodyStyle    string
		seating      int
		fuelType     string
		priorityMpg  bool
		requireAwd   bool
		safety       string
		minRating    float64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank the catalog against a needs profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var needs domain.NeedsProfile
			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				profile, err := runNeedsWizard()
				if err != nil {
					return err
				}
				needs = profile
			} else {
				needs = domain.NeedsProfile{
					BudgetType:     domain.BudgetType(budgetType),
					BudgetAmount:   budgetAmount,
					BodyStyle:      domain.BodyStyle(bodyStyle),
					Seating:        seating,
					FuelType:       domain.FuelType(fuelType),
					PriorityMpg:    priorityMpg,
					CargoNeeds:     domain.NeedNone,
					TowingNeeds:    domain.NeedNone,
					RequireAwd:     requireAwd,
					SafetyPriority: domain.SafetyPriority(safety),
					DrivingPattern: domain.DrivingMixed,
					CommuteLength:  domain.CommuteMedium,
				}
			}
			if err := needs.Validate(); err != nil {
				return err
			}

			strat := recommend.Strategy(strategy)
			if !recommend.ValidStrategies[strat] {
				return fmt.Errorf("invalid strategy %q", strategy)
			}

			vehicles, err := app.Vehicles.List(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("min-safety-rating") {
				vehicles = engine.ApplySafetyFilters(vehicles, engine.SafetyFilterOptions{
					MinSafetyRating: &minRating,
				})
			}

			result := app.Orchestrator.Recommend(ctx, vehicles, needs, strat)

			byID := make(map[string]domain.CandidateVehicle, len(vehicles))
			for _, v := range vehicles {
				byID[v.ID] = v
			}
			fmt.Print(formatter.FormatRecommendations(result, byID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Build the needs profile in a guided form")
	cmd.Flags().StringVar(&strategy, "strategy", string(recommend.StrategyPrimaryAI), "Ranking strategy: primary-ai, secondary-ai, or deterministic")
	cmd.Flags().StringVar(&budgetType, "budget-type", "cash", "Budget type: cash or monthly")
	cmd.Flags().Float64Var(&budgetAmount, "budget", 0, "Budget amount (total price or monthly payment)")
	cmd.Flags().StringVar(&bodyStyle, "body-style", "suv", "Preferred body style")
	cmd.Flags().IntVar(&seating, "seating", 5, "Minimum seat count")
	cmd.Flags().StringVar(&fuelType, "fuel-type", "gas", "Preferred fuel type: gas, hybrid, plugin-hybrid, or electric")
	cmd.Flags().BoolVar(&priorityMpg, "priority-mpg", false, "Prioritize fuel economy")
	cmd.Flags().BoolVar(&requireAwd, "require-awd", false, "Require all-wheel drive")
	cmd.Flags().StringVar(&safety, "safety", "medium", "Safety priority: low, medium, or high")
	cmd.Flags().Float64Var(&minRating, "min-safety-rating", 0, "Drop vehicles below this star rating before ranking")

	return cmd
}
