package domain

// CandidateVehicle is the normalized vehicle shape the ranking engine scores.
// All field mapping from upstream catalog formats happens in the catalog layer;
// the engine's input schema is closed and strict. The engine never mutates it.
type CandidateVehicle struct {
	ID             string   `json:"id"`
	Model          string   `json:"model"`
	Year           int      `json:"year"`
	BodyStyle      string   `json:"bodyStyle"`
	FuelType       string   `json:"fuelType"`
	Seating        int      `json:"seating"`
	MpgCombined    *float64 `json:"mpgCombined"`
	Range          *float64 `json:"range"`
	CargoVolume    float64  `json:"cargoVolume"`
	TowingCapacity float64  `json:"towingCapacity"`
	AWD            bool     `json:"awd"`
	MSRP           float64  `json:"msrp"`
	Features       []string `json:"features"`
	SafetyRating   *float64 `json:"safetyRating"`
}

// HasFeature reports whether the vehicle's flattened feature list contains id.
func (v CandidateVehicle) HasFeature(id string) bool {
	for _, f := range v.Features {
		if f == id {
			return true
		}
	}
	return false
}
