package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/alexanderramin/driveline/internal/engine"
)

// FormatVehicleList renders the catalog as a compact table.
func FormatVehicleList(vehicles []domain.CandidateVehicle) string {
	var b strings.Builder
	if len(vehicles) == 0 {
		b.WriteString(Dim("Catalog is empty."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(Header(fmt.Sprintf("Catalog (%d vehicles)", len(vehicles))))
	b.WriteString("\n\n")
	b.WriteString(Dim(fmt.Sprintf("  %-12s %-24s %-6s %-10s %-10s %-5s %s\n",
		"ID", "MODEL", "YEAR", "BODY", "FUEL", "SEATS", "MSRP")))

	for _, v := range vehicles {
		b.WriteString(fmt.Sprintf("  %-12s %-24s %-6d %-10s %-10s %-5d $%.0f\n",
			v.ID, v.Model, v.Year, v.BodyStyle, v.FuelType, v.Seating, v.MSRP))
	}
	return b.String()
}

// FormatSafetyReport renders the standalone safety assessment for a vehicle.
func FormatSafetyReport(v domain.CandidateVehicle) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Safety: %s", v.Model)))
	b.WriteString("\n\n")

	score := engine.SafetyScore(v)
	style := StyleRed
	switch {
	case score >= 70:
		style = StyleGreen
	case score >= 40:
		style = StyleYellow
	}
	line(&b, "Safety score", style.Render(fmt.Sprintf("%d/100", score)))

	if v.SafetyRating != nil {
		line(&b, "Star rating", fmt.Sprintf("%.1f/5", *v.SafetyRating))
	} else {
		line(&b, "Star rating", Dim("unknown"))
	}

	meets := "no"
	if engine.MeetsMinimumSafety(v) {
		meets = "yes"
	}
	line(&b, "Meets minimum bar", meets)

	if len(v.Features) > 0 {
		line(&b, "Features", strings.Join(v.Features, ", "))
	}
	b.WriteString("\n")
	return b.String()
}
