package engine

import (
	"math"

	"github.com/alexanderramin/driveline/internal/domain"
)

// basicSafetyFeatures is the minimum equipment bar: a vehicle needs at least
// one of these to pass MeetsMinimumSafety.
var basicSafetyFeatures = []string{"airbags", "abs", "stability-control"}

// advancedSafetyFeatures are the eight driver-assist features that make up
// 60 of the 100 safety score points.
var advancedSafetyFeatures = []string{
	"forward-collision-warning",
	"automatic-emergency-braking",
	"lane-departure-warning",
	"lane-keep-assist",
	"blind-spot-monitoring",
	"rear-cross-traffic-alert",
	"adaptive-cruise-control",
	"driver-attention-monitor",
}

// MeetsMinimumSafety reports whether a vehicle clears the minimum bar:
// a safety rating that is unknown or at least 3, plus at least one basic
// safety feature. An optional pre-filter; scoring never applies it on its own.
func MeetsMinimumSafety(v domain.CandidateVehicle) bool {
	if v.SafetyRating != nil && *v.SafetyRating < 3 {
		return false
	}
	for _, f := range basicSafetyFeatures {
		if v.HasFeature(f) {
			return true
		}
	}
	return false
}

// SafetyScore rates a vehicle 0-100 on safety alone, independent of the match
// score: up to 40 points from the star rating (0 when unknown) and up to 60
// from advanced driver-assist coverage.
func SafetyScore(v domain.CandidateVehicle) int {
	var score float64

	if v.SafetyRating != nil {
		score += (*v.SafetyRating / 5) * 40
	}

	count := 0
	for _, f := range advancedSafetyFeatures {
		if v.HasFeature(f) {
			count++
		}
	}
	score += (float64(count) / float64(len(advancedSafetyFeatures))) * 60

	return int(math.Round(score))
}

// SafetyFilterOptions narrows a candidate list before ranking.
type SafetyFilterOptions struct {
	MinSafetyRating  *float64
	RequiredFeatures []string
	ExcludeFeatures  []string
}

// ApplySafetyFilters runs the configured filters in sequence. When
// MinSafetyRating is set, vehicles with an unknown rating are dropped:
// unknown is treated as unsafe.
func ApplySafetyFilters(vehicles []domain.CandidateVehicle, opts SafetyFilterOptions) []domain.CandidateVehicle {
	filtered := vehicles

	if opts.MinSafetyRating != nil {
		min := *opts.MinSafetyRating
		filtered = filterVehicles(filtered, func(v domain.CandidateVehicle) bool {
			return v.SafetyRating != nil && *v.SafetyRating >= min
		})
	}

	if len(opts.RequiredFeatures) > 0 {
		filtered = filterVehicles(filtered, func(v domain.CandidateVehicle) bool {
			for _, f := range opts.RequiredFeatures {
				if !v.HasFeature(f) {
					return false
				}
			}
			return true
		})
	}

	if len(opts.ExcludeFeatures) > 0 {
		filtered = filterVehicles(filtered, func(v domain.CandidateVehicle) bool {
			for _, f := range opts.ExcludeFeatures {
				if v.HasFeature(f) {
					return false
				}
			}
			return true
		})
	}

	return filtered
}

func filterVehicles(vehicles []domain.CandidateVehicle, keep func(domain.CandidateVehicle) bool) []domain.CandidateVehicle {
	out := make([]domain.CandidateVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
