package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxProfileForZip(t *testing.T) {
	tests := []struct {
		zip   string
		state string
		rate  float64
	}{
		{"75001", "TX", 0.0625},
		{"94103", "CA", 0.0725},
		{"33101", "FL", 0.06},
		{"10001", "NY", 0.04},
		{"60601", "DEFAULT", 0.065},
		{"x", "DEFAULT", 0.065},
	}
	for _, tt := range tests {
		t.Run(tt.zip, func(t *testing.T) {
			p := TaxProfileForZip(tt.zip)
			assert.Equal(t, tt.state, p.State)
			assert.Equal(t, tt.rate, p.SalesTaxRate)
		})
	}
}

func TestEstimateCash(t *testing.T) {
	est := EstimateCash(CashInputs{
		VehiclePrice: 40000,
		Zip:          "75001",
		DownPayment:  5000,
	})

	// TX: 6.25% tax on 40000 plus 150 reg and 150 doc.
	assert.Equal(t, 2500.0, est.Taxes.SalesTax)
	assert.Equal(t, 300.0, est.Taxes.TotalFees)
	assert.Equal(t, 42800.0, est.OutTheDoorTotal)
	assert.Equal(t, 37800.0, est.AmountDue)
}

func TestEstimateCash_TradeInEquityCoversBalance(t *testing.T) {
	est := EstimateCash(CashInputs{
		VehiclePrice: 20000,
		Zip:          "60601",
		TradeInValue: 30000,
	})
	assert.Equal(t, 0.0, est.AmountDue)
	assert.Equal(t, 30000.0, est.TradeInEquity)
}

func TestMonthlyPayment(t *testing.T) {
	// Known amortization: 30k at 6% over 60 months is 579.98.
	assert.InDelta(t, 579.98, MonthlyPayment(30000, 6, 60), 0.01)
	assert.Equal(t, 500.0, MonthlyPayment(30000, 0, 60))
	assert.Equal(t, 0.0, MonthlyPayment(30000, 6, 0))
}

func TestEstimateLoan_ZeroAPR(t *testing.T) {
	est, err := EstimateLoan(LoanInputs{
		VehiclePrice: 30000,
		Zip:          "60601",
		DownPayment:  2225,
		TermMonths:   60,
		APR:          0,
	})
	require.NoError(t, err)

	// Default profile: 6.5% tax 1950 plus 275 fees, OTD 32225, financing 30000.
	assert.Equal(t, 32225.0, est.OutTheDoorTotal)
	assert.Equal(t, 30000.0, est.AmountFinanced)
	assert.Equal(t, 500.0, est.MonthlyPayment)
	assert.Equal(t, 0.0, est.TotalInterestPaid)
	assert.Equal(t, 2225.0, est.DueAtSigning)
}

func TestEstimateLoan_InterestAccrues(t *testing.T) {
	est, err := EstimateLoan(LoanInputs{
		VehiclePrice: 30000,
		Zip:          "60601",
		TermMonths:   60,
		APR:          5.99,
	})
	require.NoError(t, err)
	assert.Greater(t, est.TotalInterestPaid, 0.0)
	assert.InDelta(t, est.MonthlyPayment*60, est.TotalPayments, 0.5)
}

func TestEstimateLoan_InvalidInputs(t *testing.T) {
	_, err := EstimateLoan(LoanInputs{VehiclePrice: 30000, Zip: "60601", TermMonths: 0})
	assert.Error(t, err)

	_, err = EstimateLoan(LoanInputs{VehiclePrice: 30000, Zip: "60601", TermMonths: 60, APR: -1})
	assert.Error(t, err)
}

func TestEstimateLease(t *testing.T) {
	est, err := EstimateLease(LeaseInputs{
		VehiclePrice:    40000,
		Zip:             "90210",
		DownPayment:     2000,
		TermMonths:      36,
		ResidualPercent: 60,
		MoneyFactor:     0.00125,
		MileageCap:      12000,
	})
	require.NoError(t, err)

	assert.Equal(t, 38000.0, est.AdjustedCapCost)
	assert.Equal(t, 24000.0, est.ResidualValue)
	assert.Equal(t, 3.0, est.EquivalentAPR)
	// Depreciation 14000/36, rent 62000*0.00125, CA tax per payment.
	assert.InDelta(t, 388.89, est.DepreciationPayment, 0.01)
	assert.InDelta(t, 77.50, est.FinancePayment, 0.01)
	assert.InDelta(t, 500.20, est.MonthlyPayment, 0.01)
	assert.Equal(t, 36000, est.TotalMileage)
}

func TestEstimateLease_InvalidInputs(t *testing.T) {
	_, err := EstimateLease(LeaseInputs{VehiclePrice: 40000, Zip: "90210", TermMonths: 36, ResidualPercent: 0, MoneyFactor: 0.001})
	assert.Error(t, err)

	_, err = EstimateLease(LeaseInputs{VehiclePrice: 40000, Zip: "90210", TermMonths: 0, ResidualPercent: 60, MoneyFactor: 0.001})
	assert.Error(t, err)
}

func TestEstimateFuelCost_Gas(t *testing.T) {
	est, err := EstimateFuelCost(FuelInputs{
		FuelType:     "gas",
		MpgOrMpge:    30,
		AnnualMiles:  12000,
		PricePerUnit: 3.50,
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, est.UnitsPerYear)
	assert.Equal(t, 1400.0, est.AnnualCost)
	assert.InDelta(t, 116.67, est.MonthlyCost, 0.01)
	assert.InDelta(t, 0.1167, est.CostPerMile, 0.0001)
}

func TestEstimateFuelCost_Electric(t *testing.T) {
	est, err := EstimateFuelCost(FuelInputs{
		FuelType:     "electric",
		MpgOrMpge:    100,
		AnnualMiles:  12000,
		PricePerUnit: 0.15,
	})
	require.NoError(t, err)
	// 33.7/100 kWh per mile over 12000 miles.
	assert.InDelta(t, 4044, est.UnitsPerYear, 0.5)
	assert.InDelta(t, 606.6, est.AnnualCost, 0.1)
}

func TestEstimateFuelCost_InvalidInputs(t *testing.T) {
	_, err := EstimateFuelCost(FuelInputs{FuelType: "diesel", MpgOrMpge: 30, AnnualMiles: 12000, PricePerUnit: 3.5})
	assert.Error(t, err)

	_, err = EstimateFuelCost(FuelInputs{FuelType: "gas", MpgOrMpge: 0, AnnualMiles: 12000, PricePerUnit: 3.5})
	assert.Error(t, err)
}
