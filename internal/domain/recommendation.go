package domain

// Bucket capacities. The result is a bounded digest, not an exhaustive list;
// vehicles beyond all caps are dropped.
const (
	MaxTopPicks            = 3
	MaxStrongContenders    = 5
	MaxExploreAlternatives = 5
)

// ScoredVehicle is the common output shape of the deterministic scorer and the
// AI provider adapters. Score is always clamped to [0,100]; Tradeoffs is nil
// (not an empty slice) when the vehicle has none.
type ScoredVehicle struct {
	VehicleID       string   `json:"vehicleId"`
	Score           int      `json:"score"`
	Explanation     string   `json:"explanation"`
	MatchedCriteria []string `json:"matchedCriteria"`
	Tradeoffs       []string `json:"tradeoffs,omitempty"`
}

// RankedVehicle is a scored vehicle placed into a tier.
type RankedVehicle struct {
	ScoredVehicle
	Tier Tier `json:"tier"`
}

// TieredRecommendations is the terminal output of a ranking run. Each vehicle
// id appears in at most one tier; tiers are score-descending internally.
type TieredRecommendations struct {
	TopPicks            []RankedVehicle `json:"topPicks"`
	StrongContenders    []RankedVehicle `json:"strongContenders"`
	ExploreAlternatives []RankedVehicle `json:"exploreAlternatives"`
}

// Total returns the number of vehicles across all tiers.
func (t TieredRecommendations) Total() int {
	return len(t.TopPicks) + len(t.StrongContenders) + len(t.ExploreAlternatives)
}
