package engine

import (
	"sort"

	"github.com/alexanderramin/driveline/internal/domain"
)

// Tier sorts scored vehicles and buckets them into capped tiers. Both the
// deterministic and AI paths feed through here, so tier assignment lives in
// exactly one place.
//
// The sort is stable: equal scores keep their relative input order. Each
// vehicle goes to the first bucket whose score floor it meets and which still
// has room; a vehicle that qualifies for top-pick but finds the bucket full
// is dropped, never demoted to strong-contender. Anything beyond all caps is
// dropped silently; the result is a bounded digest.
func Tier(scored []domain.ScoredVehicle) domain.TieredRecommendations {
	ordered := make([]domain.ScoredVehicle, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	var result domain.TieredRecommendations
	for _, sv := range ordered {
		switch {
		case sv.Score >= 80:
			// Top-pick overflow is dropped outright, not demoted.
			if len(result.TopPicks) < domain.MaxTopPicks {
				result.TopPicks = append(result.TopPicks, domain.RankedVehicle{
					ScoredVehicle: sv,
					Tier:          domain.TierTopPick,
				})
			}
		case sv.Score >= 60 && len(result.StrongContenders) < domain.MaxStrongContenders:
			result.StrongContenders = append(result.StrongContenders, domain.RankedVehicle{
				ScoredVehicle: sv,
				Tier:          domain.TierStrongContender,
			})
		case len(result.ExploreAlternatives) < domain.MaxExploreAlternatives:
			result.ExploreAlternatives = append(result.ExploreAlternatives, domain.RankedVehicle{
				ScoredVehicle: sv,
				Tier:          domain.TierExploreAlternative,
			})
		}
	}
	return result
}
