package finance

// CashInputs describes a cash purchase.
type CashInputs struct {
	VehiclePrice  float64 `json:"vehiclePrice"`
	Zip           string  `json:"zip"`
	DownPayment   float64 `json:"downPayment,omitempty"`
	TradeInValue  float64 `json:"tradeInValue,omitempty"`
	TradeInPayoff float64 `json:"tradeInPayoff,omitempty"`
	Discounts     float64 `json:"discounts,omitempty"`
	Rebates       float64 `json:"rebates,omitempty"`
}

// CashEstimate is the out-the-door breakdown for a cash purchase.
type CashEstimate struct {
	AdjustedPrice   float64      `json:"adjustedPrice"`
	TradeInEquity   float64      `json:"tradeInEquity"`
	Taxes           TaxesAndFees `json:"taxes"`
	OutTheDoorTotal float64      `json:"outTheDoorTotal"`
	AmountDue       float64      `json:"amountDue"`
}

// EstimateCash computes the out-the-door total and amount due for a cash
// purchase. Taxes are computed on the price after discounts and rebates.
func EstimateCash(in CashInputs) CashEstimate {
	adjusted := in.VehiclePrice - in.Discounts - in.Rebates
	equity := in.TradeInValue - in.TradeInPayoff
	taxes := ComputeTaxesAndFees(adjusted, in.Zip)

	outTheDoor := adjusted + taxes.SalesTax + taxes.TotalFees
	amountDue := outTheDoor - in.DownPayment - equity
	if amountDue < 0 {
		amountDue = 0
	}

	return CashEstimate{
		AdjustedPrice:   adjusted,
		TradeInEquity:   equity,
		Taxes:           taxes,
		OutTheDoorTotal: roundCents(outTheDoor),
		AmountDue:       roundCents(amountDue),
	}
}
