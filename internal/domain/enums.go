package domain

type BudgetType string

const (
	BudgetMonthly BudgetType = "monthly"
	BudgetCash    BudgetType = "cash"
)

var ValidBudgetTypes = map[BudgetType]bool{
	BudgetMonthly: true, BudgetCash: true,
}

type BodyStyle string

const (
	BodySedan     BodyStyle = "sedan"
	BodySUV       BodyStyle = "suv"
	BodyTruck     BodyStyle = "truck"
	BodyVan       BodyStyle = "van"
	BodyCoupe     BodyStyle = "coupe"
	BodyHatchback BodyStyle = "hatchback"
)

// ValidBodyStyles is the canonical set of accepted body style strings.
var ValidBodyStyles = map[BodyStyle]bool{
	BodySedan: true, BodySUV: true, BodyTruck: true,
	BodyVan: true, BodyCoupe: true, BodyHatchback: true,
}

type FuelType string

const (
	FuelGas          FuelType = "gas"
	FuelHybrid       FuelType = "hybrid"
	FuelElectric     FuelType = "electric"
	FuelPluginHybrid FuelType = "plugin-hybrid"
)

var ValidFuelTypes = map[FuelType]bool{
	FuelGas: true, FuelHybrid: true, FuelElectric: true, FuelPluginHybrid: true,
}

// NeedLevel grades how much cargo or towing capability the buyer needs.
type NeedLevel string

const (
	NeedNone     NeedLevel = "none"
	NeedLight    NeedLevel = "light"
	NeedModerate NeedLevel = "moderate"
	NeedHeavy    NeedLevel = "heavy"
)

var ValidNeedLevels = map[NeedLevel]bool{
	NeedNone: true, NeedLight: true, NeedModerate: true, NeedHeavy: true,
}

type SafetyPriority string

const (
	SafetyLow    SafetyPriority = "low"
	SafetyMedium SafetyPriority = "medium"
	SafetyHigh   SafetyPriority = "high"
)

var ValidSafetyPriorities = map[SafetyPriority]bool{
	SafetyLow: true, SafetyMedium: true, SafetyHigh: true,
}

type DrivingPattern string

const (
	DrivingUrban   DrivingPattern = "urban"
	DrivingHighway DrivingPattern = "highway"
	DrivingMixed   DrivingPattern = "mixed"
)

var ValidDrivingPatterns = map[DrivingPattern]bool{
	DrivingUrban: true, DrivingHighway: true, DrivingMixed: true,
}

type CommuteLength string

const (
	CommuteShort  CommuteLength = "short"
	CommuteMedium CommuteLength = "medium"
	CommuteLong   CommuteLength = "long"
)

var ValidCommuteLengths = map[CommuteLength]bool{
	CommuteShort: true, CommuteMedium: true, CommuteLong: true,
}

// Tier names a recommendation bucket. Assigned only by tiering, never by a scorer.
type Tier string

const (
	TierTopPick            Tier = "top-pick"
	TierStrongContender    Tier = "strong-contender"
	TierExploreAlternative Tier = "explore-alternative"
)
