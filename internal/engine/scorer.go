// Package engine implements the deterministic ranking baseline: a pure
// match scorer, the safety evaluator, and tier bucketing. Nothing in this
// package performs I/O, so it can never fail at request time.
package engine

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/driveline/internal/domain"
)

// MonthlyApproxFactor estimates a monthly payment from MSRP for budget
// scoring only (roughly a 60-month loan at 6% APR). The finance package
// carries the full amortization math; this constant is deliberately cruder.
const MonthlyApproxFactor = 0.0193

// Raw points accumulate to at most 120 before the final clamp to 100,
// so saturation at 100 is an expected, tested outcome.
const maxScore = 100

// Score computes a deterministic 0-100 match score for one vehicle against
// one needs profile, along with matched criteria, a templated explanation,
// and any tradeoffs. Pure: no I/O, no randomness.
func Score(v domain.CandidateVehicle, needs domain.NeedsProfile) domain.ScoredVehicle {
	var raw int
	var matched []string

	budgetPts := budgetScore(v.MSRP, needs.BudgetType, needs.BudgetAmount)
	raw += budgetPts
	if budgetPts > 15 {
		matched = append(matched, "Within budget")
	}

	if strings.EqualFold(v.BodyStyle, string(needs.BodyStyle)) {
		raw += 15
		matched = append(matched, fmt.Sprintf("%s body style", v.BodyStyle))
	}

	if strings.EqualFold(v.FuelType, string(needs.FuelType)) {
		raw += 15
		matched = append(matched, fmt.Sprintf("%s powertrain", v.FuelType))
	}

	if v.Seating >= needs.Seating {
		raw += 10
		matched = append(matched, fmt.Sprintf("%d seats", v.Seating))
	}

	if needs.PriorityMpg && v.MpgCombined != nil && *v.MpgCombined >= 30 {
		raw += 10
		matched = append(matched, "Excellent fuel economy")
	}

	if needs.PriorityRange && v.Range != nil && *v.Range >= 250 {
		raw += 10
		matched = append(matched, "Long electric range")
	}

	if needs.RequireAwd && v.AWD {
		raw += 10
		matched = append(matched, "All-wheel drive")
	}

	if needs.CargoNeeds != domain.NeedNone && v.CargoVolume > 20 {
		raw += 5
		matched = append(matched, "Ample cargo space")
	}

	if needs.TowingNeeds != domain.NeedNone && v.TowingCapacity > 3500 {
		raw += 5
		matched = append(matched, "Strong towing capacity")
	}

	if needs.SafetyPriority == domain.SafetyHigh && v.SafetyRating != nil && *v.SafetyRating >= 4 {
		raw += 5
		matched = append(matched, "High safety rating")
	}

	score := raw
	if score > maxScore {
		score = maxScore
	}

	return domain.ScoredVehicle{
		VehicleID:       v.ID,
		Score:           score,
		Explanation:     explanation(v.Model, score, matched),
		MatchedCriteria: matched,
		Tradeoffs:       tradeoffs(v, needs),
	}
}

// budgetScore awards 0/10/15/20/25 points from the affordability ratio.
// Cash budgets compare MSRP directly; monthly budgets compare an estimated
// payment (MSRP * MonthlyApproxFactor) against the monthly amount.
func budgetScore(msrp float64, budgetType domain.BudgetType, amount float64) int {
	cost := msrp
	if budgetType == domain.BudgetMonthly {
		cost = msrp * MonthlyApproxFactor
	}

	switch {
	case cost <= amount:
		return 25
	case cost <= amount*1.1:
		return 20
	case cost <= amount*1.2:
		return 15
	case cost <= amount*1.3:
		return 10
	default:
		return 0
	}
}

// explanation picks one of three templates strictly by the final clamped score.
func explanation(model string, score int, matched []string) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Excellent match! This %s checks all your key requirements: %s.",
			model, strings.Join(firstN(matched, 3), ", "))
	case score >= 60:
		return fmt.Sprintf("Strong contender. The %s meets most of your needs including %s.",
			model, strings.Join(firstN(matched, 2), " and "))
	default:
		highlight := "compelling features"
		if len(matched) > 0 {
			highlight = matched[0]
		}
		return fmt.Sprintf("Worth exploring. While the %s may not match all criteria, it offers %s.",
			model, highlight)
	}
}

// tradeoffs names the ways a vehicle falls short of stated needs. Independent
// of the score; returns nil when the list is empty.
func tradeoffs(v domain.CandidateVehicle, needs domain.NeedsProfile) []string {
	var out []string

	budgetPts := budgetScore(v.MSRP, needs.BudgetType, needs.BudgetAmount)
	if budgetPts > 0 && budgetPts < 25 {
		out = append(out, "Slightly over budget")
	}

	if v.FuelType != string(needs.FuelType) {
		out = append(out, fmt.Sprintf("%s instead of %s", v.FuelType, needs.FuelType))
	}

	if needs.RequireAwd && !v.AWD {
		out = append(out, "No AWD available")
	}

	if needs.PriorityMpg && v.MpgCombined != nil && *v.MpgCombined < 25 {
		out = append(out, "Lower fuel economy")
	}

	return out
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
