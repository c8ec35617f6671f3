// Package finance computes payment estimates for cash, loan, and lease
// purchases plus fuel cost projections. All results are estimates; the
// tax table is a coarse state-level lookup keyed by ZIP prefix.
package finance

import "strconv"

// TaxProfile holds the tax rate and flat fees for one state.
type TaxProfile struct {
	State           string
	SalesTaxRate    float64
	RegistrationFee float64
	DocFee          float64
}

var stateTaxProfiles = map[string]TaxProfile{
	"TX": {State: "TX", SalesTaxRate: 0.0625, RegistrationFee: 150, DocFee: 150},
	"CA": {State: "CA", SalesTaxRate: 0.0725, RegistrationFee: 200, DocFee: 85},
	"FL": {State: "FL", SalesTaxRate: 0.06, RegistrationFee: 225, DocFee: 100},
	"NY": {State: "NY", SalesTaxRate: 0.04, RegistrationFee: 175, DocFee: 75},
}

// national-average fallback for ZIP prefixes outside the table
var defaultTaxProfile = TaxProfile{State: "DEFAULT", SalesTaxRate: 0.065, RegistrationFee: 175, DocFee: 100}

// TaxProfileForZip maps a 5-digit ZIP to a state tax profile by prefix.
// Unrecognized prefixes get the national-average default.
func TaxProfileForZip(zip string) TaxProfile {
	if len(zip) < 2 {
		return defaultTaxProfile
	}
	prefix, err := strconv.Atoi(zip[:2])
	if err != nil {
		return defaultTaxProfile
	}

	switch {
	case prefix >= 75 && prefix <= 79:
		return stateTaxProfiles["TX"]
	case prefix >= 90 && prefix <= 96:
		return stateTaxProfiles["CA"]
	case prefix >= 32 && prefix <= 34:
		return stateTaxProfiles["FL"]
	case prefix >= 10 && prefix <= 14:
		return stateTaxProfiles["NY"]
	}
	return defaultTaxProfile
}

// TaxesAndFees is the tax and fee breakdown for a purchase price.
type TaxesAndFees struct {
	SalesTax        float64 `json:"salesTax"`
	SalesTaxRate    float64 `json:"salesTaxRate"`
	RegistrationFee float64 `json:"registrationFee"`
	DocFee          float64 `json:"docFee"`
	TotalFees       float64 `json:"totalFees"`
}

// ComputeTaxesAndFees calculates sales tax and flat fees on a price for
// the state implied by the ZIP code.
func ComputeTaxesAndFees(price float64, zip string) TaxesAndFees {
	p := TaxProfileForZip(zip)
	return TaxesAndFees{
		SalesTax:        price * p.SalesTaxRate,
		SalesTaxRate:    p.SalesTaxRate,
		RegistrationFee: p.RegistrationFee,
		DocFee:          p.DocFee,
		TotalFees:       p.RegistrationFee + p.DocFee,
	}
}

func roundCents(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*100+0.5)) / 100
	}
	return float64(int64(v*100-0.5)) / 100
}
