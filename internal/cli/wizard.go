package cli

import (
	"errors"
	"strconv"

	"github.com/alexanderramin/driveline/internal/cli/formatter"
	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errInvalidAmount = errors.New("enter a positive number")

// drivelineHuhTheme returns a custom huh theme using the Gruvbox palette.
func drivelineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runNeedsWizard walks the buyer through a guided needs-profile form.
func runNeedsWizard() (domain.NeedsProfile, error) {
	needs := domain.NeedsProfile{
		CargoNeeds:  domain.NeedNone,
		TowingNeeds: domain.NeedNone,
	}
	var budgetInput string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.BudgetType]().
				Title("How are you budgeting?").
				Options(
					huh.NewOption("Total purchase price", domain.BudgetCash),
					huh.NewOption("Monthly payment", domain.BudgetMonthly),
				).
				Value(&needs.BudgetType),
			huh.NewInput().
				Title("Budget amount ($)").
				Placeholder("40000").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return errInvalidAmount
					}
					return nil
				}).
				Value(&budgetInput),
		),
		huh.NewGroup(
			huh.NewSelect[domain.BodyStyle]().
				Title("Preferred body style").
				Options(
					huh.NewOption("SUV", domain.BodySUV),
					huh.NewOption("Sedan", domain.BodySedan),
					huh.NewOption("Truck", domain.BodyTruck),
					huh.NewOption("Van", domain.BodyVan),
					huh.NewOption("Coupe", domain.BodyCoupe),
					huh.NewOption("Hatchback", domain.BodyHatchback),
				).
				Value(&needs.BodyStyle),
			huh.NewSelect[int]().
				Title("How many seats do you need?").
				Options(
					huh.NewOption("2", 2),
					huh.NewOption("4", 4),
					huh.NewOption("5", 5),
					huh.NewOption("7", 7),
					huh.NewOption("8", 8),
				).
				Value(&needs.Seating),
			huh.NewSelect[domain.FuelType]().
				Title("Preferred fuel type").
				Options(
					huh.NewOption("Gas", domain.FuelGas),
					huh.NewOption("Hybrid", domain.FuelHybrid),
					huh.NewOption("Plug-in hybrid", domain.FuelPluginHybrid),
					huh.NewOption("Electric", domain.FuelElectric),
				).
				Value(&needs.FuelType),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Prioritize fuel economy?").
				Value(&needs.PriorityMpg),
			huh.NewConfirm().
				Title("Require all-wheel drive?").
				Value(&needs.RequireAwd),
			huh.NewSelect[domain.NeedLevel]().
				Title("Cargo needs").
				Options(
					huh.NewOption("None", domain.NeedNone),
					huh.NewOption("Light", domain.NeedLight),
					huh.NewOption("Moderate", domain.NeedModerate),
					huh.NewOption("Heavy", domain.NeedHeavy),
				).
				Value(&needs.CargoNeeds),
			huh.NewSelect[domain.NeedLevel]().
				Title("Towing needs").
				Options(
					huh.NewOption("None", domain.NeedNone),
					huh.NewOption("Light", domain.NeedLight),
					huh.NewOption("Moderate", domain.NeedModerate),
					huh.NewOption("Heavy", domain.NeedHeavy),
				).
				Value(&needs.TowingNeeds),
		),
		huh.NewGroup(
			huh.NewSelect[domain.SafetyPriority]().
				Title("How important is safety?").
				Options(
					huh.NewOption("Low", domain.SafetyLow),
					huh.NewOption("Medium", domain.SafetyMedium),
					huh.NewOption("High", domain.SafetyHigh),
				).
				Value(&needs.SafetyPriority),
			huh.NewSelect[domain.DrivingPattern]().
				Title("Where do you mostly drive?").
				Options(
					huh.NewOption("City", domain.DrivingUrban),
					huh.NewOption("Highway", domain.DrivingHighway),
					huh.NewOption("Mixed", domain.DrivingMixed),
				).
				Value(&needs.DrivingPattern),
			huh.NewSelect[domain.CommuteLength]().
				Title("How long is your commute?").
				Options(
					huh.NewOption("Short", domain.CommuteShort),
					huh.NewOption("Medium", domain.CommuteMedium),
					huh.NewOption("Long", domain.CommuteLong),
				).
				Value(&needs.CommuteLength),
		),
	).WithTheme(drivelineHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.NeedsProfile{}, err
	}

	amount, err := strconv.ParseFloat(budgetInput, 64)
	if err != nil {
		return domain.NeedsProfile{}, errInvalidAmount
	}
	needs.BudgetAmount = amount
	return needs, nil
}
