package engine

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredWith(id string, score int) domain.ScoredVehicle {
	return domain.ScoredVehicle{
		VehicleID:       id,
		Score:           score,
		Explanation:     "test",
		MatchedCriteria: []string{},
	}
}

func TestTier_BucketsByScore(t *testing.T) {
	scored := []domain.ScoredVehicle{
		scoredWith("low", 40),
		scoredWith("high", 92),
		scoredWith("mid", 65),
	}

	result := Tier(scored)

	require.Len(t, result.TopPicks, 1)
	require.Len(t, result.StrongContenders, 1)
	require.Len(t, result.ExploreAlternatives, 1)
	assert.Equal(t, "high", result.TopPicks[0].VehicleID)
	assert.Equal(t, domain.TierTopPick, result.TopPicks[0].Tier)
	assert.Equal(t, "mid", result.StrongContenders[0].VehicleID)
	assert.Equal(t, domain.TierStrongContender, result.StrongContenders[0].Tier)
	assert.Equal(t, "low", result.ExploreAlternatives[0].VehicleID)
	assert.Equal(t, domain.TierExploreAlternative, result.ExploreAlternatives[0].Tier)
}

func TestTier_TopPickOverflowIsDroppedNotDemoted(t *testing.T) {
	scored := []domain.ScoredVehicle{
		scoredWith("a", 95),
		scoredWith("b", 90),
		scoredWith("c", 88),
		scoredWith("d", 85),
		scoredWith("e", 82),
	}

	result := Tier(scored)

	require.Len(t, result.TopPicks, 3)
	assert.Equal(t, "a", result.TopPicks[0].VehicleID)
	assert.Equal(t, "b", result.TopPicks[1].VehicleID)
	assert.Equal(t, "c", result.TopPicks[2].VehicleID)

	// The 85 and 82 scorers qualify for top-pick by score; with the bucket
	// full they are dropped entirely, never moved down a tier.
	assert.Empty(t, result.StrongContenders)
	assert.Empty(t, result.ExploreAlternatives)
}

func TestTier_StableForEqualScores(t *testing.T) {
	scored := []domain.ScoredVehicle{
		scoredWith("first", 70),
		scoredWith("second", 70),
		scoredWith("third", 70),
	}

	result := Tier(scored)

	require.Len(t, result.StrongContenders, 3)
	assert.Equal(t, "first", result.StrongContenders[0].VehicleID)
	assert.Equal(t, "second", result.StrongContenders[1].VehicleID)
	assert.Equal(t, "third", result.StrongContenders[2].VehicleID)
}

func TestTier_CapsAndUniqueIDs(t *testing.T) {
	var scored []domain.ScoredVehicle
	for i := 0; i < 20; i++ {
		scored = append(scored, scoredWith(fmt.Sprintf("v-%d", i), 100-i*5))
	}

	result := Tier(scored)

	assert.LessOrEqual(t, len(result.TopPicks), domain.MaxTopPicks)
	assert.LessOrEqual(t, len(result.StrongContenders), domain.MaxStrongContenders)
	assert.LessOrEqual(t, len(result.ExploreAlternatives), domain.MaxExploreAlternatives)

	seen := map[string]bool{}
	for _, tier := range [][]domain.RankedVehicle{result.TopPicks, result.StrongContenders, result.ExploreAlternatives} {
		for _, rv := range tier {
			assert.False(t, seen[rv.VehicleID], "vehicle %s appears twice", rv.VehicleID)
			seen[rv.VehicleID] = true
		}
	}
}

func TestTier_ScoreDescendingWithinBuckets(t *testing.T) {
	scored := []domain.ScoredVehicle{
		scoredWith("a", 61),
		scoredWith("b", 79),
		scoredWith("c", 85),
		scoredWith("d", 70),
	}

	result := Tier(scored)

	require.Len(t, result.StrongContenders, 3)
	assert.Equal(t, "b", result.StrongContenders[0].VehicleID)
	assert.Equal(t, "d", result.StrongContenders[1].VehicleID)
	assert.Equal(t, "a", result.StrongContenders[2].VehicleID)
}

func TestTier_StrongContenderOverflowFallsToExplore(t *testing.T) {
	var scored []domain.ScoredVehicle
	for i := 0; i < 7; i++ {
		scored = append(scored, scoredWith(fmt.Sprintf("v-%d", i), 65))
	}

	result := Tier(scored)

	assert.Len(t, result.StrongContenders, 5)
	assert.Len(t, result.ExploreAlternatives, 2)
}

func TestTier_DoesNotMutateInput(t *testing.T) {
	scored := []domain.ScoredVehicle{
		scoredWith("low", 10),
		scoredWith("high", 90),
	}

	Tier(scored)

	assert.Equal(t, "low", scored[0].VehicleID)
	assert.Equal(t, "high", scored[1].VehicleID)
}

func TestTier_EmptyInput(t *testing.T) {
	result := Tier(nil)
	assert.Equal(t, 0, result.Total())
}
