package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/driveline/internal/finance"
)

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func line(b *strings.Builder, label string, value string) {
	b.WriteString(fmt.Sprintf("  %-22s %s\n", Dim(label), StyleFg.Render(value)))
}

// FormatLoanEstimate renders a loan estimate breakdown.
func FormatLoanEstimate(est finance.LoanEstimate) string {
	var b strings.Builder
	b.WriteString(Header("Loan Estimate"))
	b.WriteString("\n\n")
	line(&b, "Out-the-door total", money(est.OutTheDoorTotal))
	line(&b, "Amount financed", money(est.AmountFinanced))
	line(&b, "Monthly payment", StyleGreen.Render(money(est.MonthlyPayment)))
	line(&b, "Total interest", money(est.TotalInterestPaid))
	line(&b, "Total cost over term", money(est.TotalCostOverTerm))
	line(&b, "Due at signing", money(est.DueAtSigning))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("  Sales tax %s at %.2f%%, fees %s",
		money(est.Taxes.SalesTax), est.Taxes.SalesTaxRate*100, money(est.Taxes.TotalFees))))
	b.WriteString("\n")
	return b.String()
}

// FormatLeaseEstimate renders a lease estimate breakdown.
func FormatLeaseEstimate(est finance.LeaseEstimate) string {
	var b strings.Builder
	b.WriteString(Header("Lease Estimate"))
	b.WriteString("\n\n")
	line(&b, "Adjusted cap cost", money(est.AdjustedCapCost))
	line(&b, "Residual value", money(est.ResidualValue))
	line(&b, "Monthly payment", StyleGreen.Render(money(est.MonthlyPayment)))
	line(&b, "Due at signing", money(est.DueAtSigning))
	line(&b, "Total lease payments", money(est.TotalLeasePayments))
	line(&b, "Equivalent APR", fmt.Sprintf("%.2f%%", est.EquivalentAPR))
	line(&b, "Mileage allowance", fmt.Sprintf("%d mi", est.TotalMileage))
	b.WriteString("\n")
	return b.String()
}

// FormatCashEstimate renders a cash purchase breakdown.
func FormatCashEstimate(est finance.CashEstimate) string {
	var b strings.Builder
	b.WriteString(Header("Cash Estimate"))
	b.WriteString("\n\n")
	line(&b, "Adjusted price", money(est.AdjustedPrice))
	line(&b, "Sales tax", money(est.Taxes.SalesTax))
	line(&b, "Fees", money(est.Taxes.TotalFees))
	line(&b, "Out-the-door total", StyleGreen.Render(money(est.OutTheDoorTotal)))
	line(&b, "Amount due", money(est.AmountDue))
	b.WriteString("\n")
	return b.String()
}

// FormatFuelEstimate renders a fuel cost projection.
func FormatFuelEstimate(est finance.FuelEstimate) string {
	var b strings.Builder
	b.WriteString(Header("Fuel Cost Estimate"))
	b.WriteString("\n\n")
	line(&b, "Units per year", fmt.Sprintf("%.2f", est.UnitsPerYear))
	line(&b, "Monthly cost", StyleGreen.Render(money(est.MonthlyCost)))
	line(&b, "Annual cost", money(est.AnnualCost))
	line(&b, "Cost per mile", fmt.Sprintf("$%.4f", est.CostPerMile))
	b.WriteString("\n")
	return b.String()
}
