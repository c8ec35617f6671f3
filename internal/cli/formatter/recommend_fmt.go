package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/driveline/internal/domain"
)

// FormatRecommendations renders the tiered result as a styled CLI report.
// Vehicle models are resolved through byID when available; otherwise the
// raw vehicle id is shown.
func FormatRecommendations(result domain.TieredRecommendations, byID map[string]domain.CandidateVehicle) string {
	var b strings.Builder

	if result.Total() == 0 {
		b.WriteString(Dim("No vehicles matched your criteria."))
		b.WriteString("\n")
		return b.String()
	}

	sections := []struct {
		title    string
		vehicles []domain.RankedVehicle
	}{
		{"Top Picks", result.TopPicks},
		{"Strong Contenders", result.StrongContenders},
		{"Explore Alternatives", result.ExploreAlternatives},
	}

	first := true
	for _, sec := range sections {
		if len(sec.vehicles) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false

		b.WriteString(Header(sec.title))
		b.WriteString("\n\n")

		for i, rv := range sec.vehicles {
			label := rv.VehicleID
			if v, ok := byID[rv.VehicleID]; ok {
				label = fmt.Sprintf("%s (%d)", v.Model, v.Year)
			}

			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				Bold(fmt.Sprintf("%d.", i+1)),
				TierStyle(rv.Tier).Render(label),
				ScoreBadge(rv.Score),
			))
			b.WriteString(fmt.Sprintf("   %s\n", StyleFg.Render(rv.Explanation)))

			if len(rv.MatchedCriteria) > 0 {
				b.WriteString(fmt.Sprintf("   %s %s\n",
					StyleGreen.Render("MATCHES:"),
					Dim(strings.Join(rv.MatchedCriteria, ", "))))
			}
			for _, tr := range rv.Tradeoffs {
				b.WriteString(fmt.Sprintf("   %s %s\n",
					StyleYellow.Render("TRADEOFF:"), Dim(tr)))
			}

			if i < len(sec.vehicles)-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d vehicle(s) ranked.", result.Total())))
	b.WriteString("\n")
	return b.String()
}
