// Package provider implements the AI ranking adapters. Each adapter calls a
// generative model over HTTP, asks it to rank the candidate vehicles against
// the needs profile, and parses the response into the engine's common scored
// shape. Adapters fail loudly: any transport, credential, or output problem
// surfaces as an error for the orchestrator's fallback chain; they never
// return partial rankings.
package provider

import (
	"context"
	"fmt"

	"github.com/alexanderramin/driveline/internal/domain"
)

// Ranker is the common capability every AI provider adapter exposes.
// Implementations must not assign tiers; that is the tiering step's job.
type Ranker interface {
	// Name identifies the provider in logs and fallback events.
	Name() string

	// Rank scores the given vehicles against the needs profile.
	Rank(ctx context.Context, vehicles []domain.CandidateVehicle, needs domain.NeedsProfile) ([]domain.ScoredVehicle, error)
}

// rankingsDoc is the JSON document every provider must produce, either
// directly or embedded in its own response envelope.
type rankingsDoc struct {
	Rankings []rankingEntry `json:"rankings"`
}

// rankingEntry tolerates float scores; models round-trip numbers loosely.
type rankingEntry struct {
	VehicleID       string   `json:"vehicleId"`
	Score           float64  `json:"score"`
	Explanation     string   `json:"explanation"`
	MatchedCriteria []string `json:"matchedCriteria"`
	Tradeoffs       []string `json:"tradeoffs,omitempty"`
}

// toScoredVehicles validates a rankings document against the candidate list
// and converts it to the engine shape. Unknown vehicle ids and empty
// documents are invalid output; scores are rounded and clamped to [0,100].
func toScoredVehicles(doc rankingsDoc, vehicles []domain.CandidateVehicle) ([]domain.ScoredVehicle, error) {
	if len(doc.Rankings) == 0 {
		return nil, fmt.Errorf("%w: empty rankings", ErrInvalidOutput)
	}

	known := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		known[v.ID] = true
	}

	out := make([]domain.ScoredVehicle, 0, len(doc.Rankings))
	for _, r := range doc.Rankings {
		if r.VehicleID == "" {
			return nil, fmt.Errorf("%w: ranking entry missing vehicleId", ErrInvalidOutput)
		}
		if !known[r.VehicleID] {
			return nil, fmt.Errorf("%w: unknown vehicle id %q", ErrInvalidOutput, r.VehicleID)
		}
		if r.Explanation == "" {
			return nil, fmt.Errorf("%w: ranking for %s missing explanation", ErrInvalidOutput, r.VehicleID)
		}

		score := int(r.Score + 0.5)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		criteria := r.MatchedCriteria
		if criteria == nil {
			criteria = []string{}
		}

		out = append(out, domain.ScoredVehicle{
			VehicleID:       r.VehicleID,
			Score:           score,
			Explanation:     r.Explanation,
			MatchedCriteria: criteria,
			Tradeoffs:       r.Tradeoffs,
		})
	}
	return out, nil
}
