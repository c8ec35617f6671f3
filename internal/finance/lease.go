package finance

import "fmt"

// LeaseInputs describes a lease.
type LeaseInputs struct {
	VehiclePrice    float64 `json:"vehiclePrice"`
	Zip             string  `json:"zip"`
	DownPayment     float64 `json:"downPayment,omitempty"`
	TradeInValue    float64 `json:"tradeInValue,omitempty"`
	TradeInPayoff   float64 `json:"tradeInPayoff,omitempty"`
	Discounts       float64 `json:"discounts,omitempty"`
	Rebates         float64 `json:"rebates,omitempty"`
	TermMonths      int     `json:"termMonths"`
	ResidualPercent float64 `json:"residualPercent"`
	MoneyFactor     float64 `json:"moneyFactor"`
	MileageCap      int     `json:"mileageCap"`
}

// LeaseEstimate is the breakdown for a lease.
type LeaseEstimate struct {
	AdjustedCapCost     float64      `json:"adjustedCapCost"`
	ResidualValue       float64      `json:"residualValue"`
	EquivalentAPR       float64      `json:"equivalentApr"`
	Taxes               TaxesAndFees `json:"taxes"`
	DepreciationPayment float64      `json:"depreciationPayment"`
	FinancePayment      float64      `json:"financePayment"`
	MonthlyPayment      float64      `json:"monthlyPayment"`
	TotalLeasePayments  float64      `json:"totalLeasePayments"`
	DueAtSigning        float64      `json:"dueAtSigning"`
	TotalCostOverTerm   float64      `json:"totalCostOverTerm"`
	TotalMileage        int          `json:"totalMileage"`
}

// EstimateLease computes a lease estimate from residual percent and money
// factor. The monthly payment is depreciation plus rent charge plus the
// state's sales tax applied per payment.
func EstimateLease(in LeaseInputs) (LeaseEstimate, error) {
	if in.TermMonths <= 0 {
		return LeaseEstimate{}, fmt.Errorf("lease term must be positive, got %d", in.TermMonths)
	}
	if in.ResidualPercent <= 0 || in.ResidualPercent >= 100 {
		return LeaseEstimate{}, fmt.Errorf("residual percent must be in (0, 100), got %g", in.ResidualPercent)
	}
	if in.MoneyFactor < 0 {
		return LeaseEstimate{}, fmt.Errorf("money factor must be non-negative, got %g", in.MoneyFactor)
	}

	adjusted := in.VehiclePrice - in.Discounts - in.Rebates
	equity := in.TradeInValue - in.TradeInPayoff
	adjustedCapCost := adjusted - (in.DownPayment + equity)
	residual := in.VehiclePrice * in.ResidualPercent / 100
	taxes := ComputeTaxesAndFees(adjusted, in.Zip)

	depreciation := (adjustedCapCost - residual) / float64(in.TermMonths)
	rent := (adjustedCapCost + residual) * in.MoneyFactor
	base := depreciation + rent
	monthly := base + base*taxes.SalesTaxRate

	totalPayments := monthly * float64(in.TermMonths)
	dueAtSigning := in.DownPayment + monthly + taxes.TotalFees

	// Report the per-payment tax summed over the term as the total tax.
	taxes.SalesTax = roundCents(base * taxes.SalesTaxRate * float64(in.TermMonths))

	return LeaseEstimate{
		AdjustedCapCost:     roundCents(adjustedCapCost),
		ResidualValue:       roundCents(residual),
		EquivalentAPR:       roundCents(in.MoneyFactor * 2400),
		Taxes:               taxes,
		DepreciationPayment: roundCents(depreciation),
		FinancePayment:      roundCents(rent),
		MonthlyPayment:      roundCents(monthly),
		TotalLeasePayments:  roundCents(totalPayments),
		DueAtSigning:        roundCents(dueAtSigning),
		TotalCostOverTerm:   roundCents(dueAtSigning + monthly*float64(in.TermMonths-1)),
		TotalMileage:        in.MileageCap * in.TermMonths / 12,
	}, nil
}
