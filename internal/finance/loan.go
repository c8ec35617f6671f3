package finance

import (
	"fmt"
	"math"
)

// LoanInputs describes a financed purchase.
type LoanInputs struct {
	VehiclePrice  float64 `json:"vehiclePrice"`
	Zip           string  `json:"zip"`
	DownPayment   float64 `json:"downPayment,omitempty"`
	TradeInValue  float64 `json:"tradeInValue,omitempty"`
	TradeInPayoff float64 `json:"tradeInPayoff,omitempty"`
	Discounts     float64 `json:"discounts,omitempty"`
	Rebates       float64 `json:"rebates,omitempty"`
	TermMonths    int     `json:"termMonths"`
	APR           float64 `json:"apr"`
}

// LoanEstimate is the amortized breakdown for a financed purchase.
type LoanEstimate struct {
	AdjustedPrice     float64      `json:"adjustedPrice"`
	TradeInEquity     float64      `json:"tradeInEquity"`
	Taxes             TaxesAndFees `json:"taxes"`
	OutTheDoorTotal   float64      `json:"outTheDoorTotal"`
	AmountFinanced    float64      `json:"amountFinanced"`
	MonthlyPayment    float64      `json:"monthlyPayment"`
	TotalPayments     float64      `json:"totalPayments"`
	TotalInterestPaid float64      `json:"totalInterestPaid"`
	TotalCostOverTerm float64      `json:"totalCostOverTerm"`
	DueAtSigning      float64      `json:"dueAtSigning"`
}

// MonthlyPayment returns the standard amortized payment for a principal
// at the given APR (percent, e.g. 5.99) over termMonths.
func MonthlyPayment(principal, apr float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if apr == 0 {
		return principal / float64(termMonths)
	}
	r := apr / 12 / 100
	growth := math.Pow(1+r, float64(termMonths))
	return principal * r * growth / (growth - 1)
}

// EstimateLoan computes a full loan estimate. Taxes and fees are rolled
// into the financed amount; due at signing is the down payment alone.
func EstimateLoan(in LoanInputs) (LoanEstimate, error) {
	if in.TermMonths <= 0 {
		return LoanEstimate{}, fmt.Errorf("loan term must be positive, got %d", in.TermMonths)
	}
	if in.APR < 0 {
		return LoanEstimate{}, fmt.Errorf("apr must be non-negative, got %g", in.APR)
	}

	adjusted := in.VehiclePrice - in.Discounts - in.Rebates
	equity := in.TradeInValue - in.TradeInPayoff
	taxes := ComputeTaxesAndFees(adjusted, in.Zip)

	outTheDoor := adjusted + taxes.SalesTax + taxes.TotalFees
	financed := outTheDoor - in.DownPayment - equity
	if financed < 0 {
		financed = 0
	}

	monthly := MonthlyPayment(financed, in.APR, in.TermMonths)
	totalPayments := monthly * float64(in.TermMonths)

	return LoanEstimate{
		AdjustedPrice:     adjusted,
		TradeInEquity:     equity,
		Taxes:             taxes,
		OutTheDoorTotal:   roundCents(outTheDoor),
		AmountFinanced:    roundCents(financed),
		MonthlyPayment:    roundCents(monthly),
		TotalPayments:     roundCents(totalPayments),
		TotalInterestPaid: roundCents(totalPayments - financed),
		TotalCostOverTerm: roundCents(in.DownPayment + equity + totalPayments),
		DueAtSigning:      roundCents(in.DownPayment),
	}, nil
}
