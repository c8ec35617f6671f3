package finance

import "fmt"

// EPA equivalency: one gallon of gasoline equals 33.7 kWh.
const kwhPerGallon = 33.7

// FuelInputs describes an annual fuel or energy cost projection.
type FuelInputs struct {
	FuelType     string  `json:"fuelType"` // "gas" or "electric"
	MpgOrMpge    float64 `json:"mpgOrMpge"`
	AnnualMiles  float64 `json:"annualMiles"`
	PricePerUnit float64 `json:"pricePerUnit"` // $/gallon or $/kWh
}

// FuelEstimate is the projected fuel or energy cost.
type FuelEstimate struct {
	UnitsPerYear float64 `json:"unitsPerYear"` // gallons or kWh
	MonthlyCost  float64 `json:"monthlyCost"`
	AnnualCost   float64 `json:"annualCost"`
	CostPerMile  float64 `json:"costPerMile"`
}

// EstimateFuelCost projects annual fuel or charging cost. Electric
// vehicles convert MPGe to kWh per mile via the EPA equivalency.
func EstimateFuelCost(in FuelInputs) (FuelEstimate, error) {
	if in.MpgOrMpge <= 0 {
		return FuelEstimate{}, fmt.Errorf("mpg must be positive, got %g", in.MpgOrMpge)
	}
	if in.AnnualMiles <= 0 {
		return FuelEstimate{}, fmt.Errorf("annual miles must be positive, got %g", in.AnnualMiles)
	}

	var units float64
	switch in.FuelType {
	case "electric":
		units = in.AnnualMiles * (kwhPerGallon / in.MpgOrMpge)
	case "gas", "hybrid", "plug-in-hybrid":
		units = in.AnnualMiles / in.MpgOrMpge
	default:
		return FuelEstimate{}, fmt.Errorf("unknown fuel type %q", in.FuelType)
	}

	annual := units * in.PricePerUnit
	return FuelEstimate{
		UnitsPerYear: roundCents(units),
		MonthlyCost:  roundCents(annual / 12),
		AnnualCost:   roundCents(annual),
		CostPerMile:  float64(int64(annual/in.AnnualMiles*10000+0.5)) / 10000,
	}, nil
}
