// Package testutil provides shared vehicle and needs fixtures for tests.
package testutil

import "github.com/alexanderramin/driveline/internal/domain"

// Float returns a pointer to f, for the nullable vehicle fields.
func Float(f float64) *float64 {
	return &f
}

// VehicleOption mutates a test vehicle.
type VehicleOption func(*domain.CandidateVehicle)

func WithMSRP(msrp float64) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.MSRP = msrp }
}

func WithFuelType(ft string) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.FuelType = ft }
}

func WithBodyStyle(bs string) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.BodyStyle = bs }
}

func WithSeating(n int) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.Seating = n }
}

func WithMpg(mpg float64) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.MpgCombined = &mpg }
}

func WithRange(miles float64) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.Range = &miles }
}

func WithAWD(awd bool) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.AWD = awd }
}

func WithSafetyRating(r float64) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.SafetyRating = &r }
}

func WithNoSafetyRating() VehicleOption {
	return func(v *domain.CandidateVehicle) { v.SafetyRating = nil }
}

func WithFeatures(features ...string) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.Features = features }
}

func WithTowing(lbs float64) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.TowingCapacity = lbs }
}

func WithCargo(cuft float64) VehicleOption {
	return func(v *domain.CandidateVehicle) { v.CargoVolume = cuft }
}

// NewTestVehicle builds a mid-size hybrid SUV that matches DefaultNeeds well.
func NewTestVehicle(id, model string, opts ...VehicleOption) domain.CandidateVehicle {
	v := domain.CandidateVehicle{
		ID:             id,
		Model:          model,
		Year:           2025,
		BodyStyle:      "suv",
		FuelType:       "hybrid",
		Seating:        5,
		MpgCombined:    Float(38),
		Range:          nil,
		CargoVolume:    30,
		TowingCapacity: 1500,
		AWD:            true,
		MSRP:           36000,
		Features:       []string{"airbags", "abs", "stability-control", "blind-spot-monitoring"},
		SafetyRating:   Float(5),
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// NeedsOption mutates a test needs profile.
type NeedsOption func(*domain.NeedsProfile)

func WithBudget(t domain.BudgetType, amount float64) NeedsOption {
	return func(n *domain.NeedsProfile) {
		n.BudgetType = t
		n.BudgetAmount = amount
	}
}

func WithNeedsFuelType(ft domain.FuelType) NeedsOption {
	return func(n *domain.NeedsProfile) { n.FuelType = ft }
}

func WithPriorityMpg(b bool) NeedsOption {
	return func(n *domain.NeedsProfile) { n.PriorityMpg = b }
}

func WithRequireAwd(b bool) NeedsOption {
	return func(n *domain.NeedsProfile) { n.RequireAwd = b }
}

func WithSafetyPriority(p domain.SafetyPriority) NeedsOption {
	return func(n *domain.NeedsProfile) { n.SafetyPriority = p }
}

// DefaultNeeds builds a valid profile for a hybrid SUV shopper.
func DefaultNeeds(opts ...NeedsOption) domain.NeedsProfile {
	n := domain.NeedsProfile{
		BudgetType:        domain.BudgetCash,
		BudgetAmount:      40000,
		BodyStyle:         domain.BodySUV,
		Seating:           5,
		FuelType:          domain.FuelHybrid,
		PriorityMpg:       true,
		PriorityRange:     false,
		CargoNeeds:        domain.NeedModerate,
		TowingNeeds:       domain.NeedNone,
		RequireAwd:        true,
		SafetyPriority:    domain.SafetyHigh,
		DriverAssistNeeds: []string{"blind-spot-monitoring"},
		MustHaveFeatures:  []string{"airbags"},
		DrivingPattern:    domain.DrivingMixed,
		CommuteLength:     domain.CommuteMedium,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}
