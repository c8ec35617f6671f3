package domain

import "fmt"

// NeedsProfile captures everything the buyer told us about what they want.
// Immutable input; constructed and validated by the caller before ranking.
type NeedsProfile struct {
	BudgetType        BudgetType     `json:"budgetType"`
	BudgetAmount      float64        `json:"budgetAmount"`
	BodyStyle         BodyStyle      `json:"bodyStyle"`
	Seating           int            `json:"seating"`
	FuelType          FuelType       `json:"fuelType"`
	PriorityMpg       bool           `json:"priorityMpg"`
	PriorityRange     bool           `json:"priorityRange"`
	CargoNeeds        NeedLevel      `json:"cargoNeeds"`
	TowingNeeds       NeedLevel      `json:"towingNeeds"`
	RequireAwd        bool           `json:"requireAwd"`
	SafetyPriority    SafetyPriority `json:"safetyPriority"`
	DriverAssistNeeds []string       `json:"driverAssistNeeds"`
	MustHaveFeatures  []string       `json:"mustHaveFeatures"`
	DrivingPattern    DrivingPattern `json:"drivingPattern"`
	CommuteLength     CommuteLength  `json:"commuteLength"`
}

// Validate checks the profile against the input contract. The ranking engine
// assumes a valid profile; callers run this before invoking it.
func (n NeedsProfile) Validate() error {
	if !ValidBudgetTypes[n.BudgetType] {
		return fmt.Errorf("invalid budget type %q", n.BudgetType)
	}
	if n.BudgetAmount <= 0 {
		return fmt.Errorf("budget amount must be positive, got %g", n.BudgetAmount)
	}
	if !ValidBodyStyles[n.BodyStyle] {
		return fmt.Errorf("invalid body style %q", n.BodyStyle)
	}
	if n.Seating < 2 || n.Seating > 8 {
		return fmt.Errorf("seating must be between 2 and 8, got %d", n.Seating)
	}
	if !ValidFuelTypes[n.FuelType] {
		return fmt.Errorf("invalid fuel type %q", n.FuelType)
	}
	if !ValidNeedLevels[n.CargoNeeds] {
		return fmt.Errorf("invalid cargo needs %q", n.CargoNeeds)
	}
	if !ValidNeedLevels[n.TowingNeeds] {
		return fmt.Errorf("invalid towing needs %q", n.TowingNeeds)
	}
	if !ValidSafetyPriorities[n.SafetyPriority] {
		return fmt.Errorf("invalid safety priority %q", n.SafetyPriority)
	}
	if !ValidDrivingPatterns[n.DrivingPattern] {
		return fmt.Errorf("invalid driving pattern %q", n.DrivingPattern)
	}
	if !ValidCommuteLengths[n.CommuteLength] {
		return fmt.Errorf("invalid commute length %q", n.CommuteLength)
	}
	return nil
}
