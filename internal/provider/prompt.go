package provider

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/driveline/internal/domain"
)

// buildRankingPrompt serializes the candidates and needs to JSON and embeds
// them in the ranking instruction shared by all providers. The reply must be
// a bare JSON rankings document.
func buildRankingPrompt(vehicles []domain.CandidateVehicle, needs domain.NeedsProfile) (string, error) {
	vehiclesJSON, err := json.MarshalIndent(vehicles, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling vehicles: %w", err)
	}
	needsJSON, err := json.MarshalIndent(needs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling needs: %w", err)
	}

	return fmt.Sprintf(`You are an automotive expert helping a customer find the right vehicle.

User Needs:
%s

Available Vehicles:
%s

Task: Rank these vehicles from best to worst match for this customer. For each vehicle, provide:
1. A match score (0-100)
2. A brief explanation (max 200 chars) of why it's a good match
3. List of matched criteria (e.g., "Within budget", "Hybrid powertrain", "7 seats")
4. Any tradeoffs or compromises (optional)

Respond with JSON only, in this exact format:
{
  "rankings": [
    {
      "vehicleId": "string",
      "score": number,
      "explanation": "string",
      "matchedCriteria": ["string"],
      "tradeoffs": ["string"]
    }
  ]
}

Focus on practical, honest recommendations. Don't oversell vehicles that don't match well.`,
		needsJSON, vehiclesJSON), nil
}
