package cli

import (
	"fmt"

	"github.com/alexanderramin/driveline/internal/cli/formatter"
	"github.com/alexanderramin/driveline/internal/finance"
	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate loan, lease, cash, or fuel costs",
	}
	cmd.AddCommand(
		newEstimateLoanCmd(),
		newEstimateLeaseCmd(),
		newEstimateCashCmd(),
		newEstimateFuelCmd(),
	)
	return cmd
}

func newEstimateLoanCmd() *cobra.Command {
	var in finance.LoanInputs

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Estimate an amortized auto loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := finance.EstimateLoan(in)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatLoanEstimate(est))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.VehiclePrice, "price", 0, "Vehicle price")
	cmd.Flags().StringVar(&in.Zip, "zip", "", "5-digit ZIP code for taxes and fees")
	cmd.Flags().Float64Var(&in.DownPayment, "down", 0, "Down payment")
	cmd.Flags().Float64Var(&in.TradeInValue, "trade-in", 0, "Trade-in value")
	cmd.Flags().Float64Var(&in.TradeInPayoff, "trade-in-payoff", 0, "Remaining balance on the trade-in")
	cmd.Flags().IntVar(&in.TermMonths, "term", 60, "Loan term in months")
	cmd.Flags().Float64Var(&in.APR, "apr", 5.99, "Annual percentage rate")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("zip")

	return cmd
}

func newEstimateLeaseCmd() *cobra.Command {
	var in finance.LeaseInputs

	cmd := &cobra.Command{
		Use:   "lease",
		Short: "Estimate a lease from residual and money factor",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := finance.EstimateLease(in)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatLeaseEstimate(est))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.VehiclePrice, "price", 0, "Vehicle price")
	cmd.Flags().StringVar(&in.Zip, "zip", "", "5-digit ZIP code for taxes and fees")
	cmd.Flags().Float64Var(&in.DownPayment, "down", 0, "Capitalized cost reduction")
	cmd.Flags().IntVar(&in.TermMonths, "term", 36, "Lease term in months")
	cmd.Flags().Float64Var(&in.ResidualPercent, "residual", 60, "Residual value as a percent of price")
	cmd.Flags().Float64Var(&in.MoneyFactor, "money-factor", 0.00125, "Lease money factor")
	cmd.Flags().IntVar(&in.MileageCap, "mileage", 12000, "Annual mileage cap")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("zip")

	return cmd
}

func newEstimateCashCmd() *cobra.Command {
	var in finance.CashInputs

	cmd := &cobra.Command{
		Use:   "cash",
		Short: "Estimate an out-the-door cash purchase",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatCashEstimate(finance.EstimateCash(in)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.VehiclePrice, "price", 0, "Vehicle price")
	cmd.Flags().StringVar(&in.Zip, "zip", "", "5-digit ZIP code for taxes and fees")
	cmd.Flags().Float64Var(&in.DownPayment, "down", 0, "Down payment")
	cmd.Flags().Float64Var(&in.TradeInValue, "trade-in", 0, "Trade-in value")
	cmd.Flags().Float64Var(&in.Discounts, "discounts", 0, "Dealer discounts")
	cmd.Flags().Float64Var(&in.Rebates, "rebates", 0, "Manufacturer rebates")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("zip")

	return cmd
}

func newEstimateFuelCmd() *cobra.Command {
	var in finance.FuelInputs

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Project annual fuel or charging costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := finance.EstimateFuelCost(in)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatFuelEstimate(est))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.FuelType, "fuel-type", "gas", "gas or electric")
	cmd.Flags().Float64Var(&in.MpgOrMpge, "mpg", 0, "MPG (gas) or MPGe (electric)")
	cmd.Flags().Float64Var(&in.AnnualMiles, "miles", 12000, "Annual miles driven")
	cmd.Flags().Float64Var(&in.PricePerUnit, "price-per-unit", 0, "$/gallon or $/kWh")
	cmd.MarkFlagRequired("mpg")
	cmd.MarkFlagRequired("price-per-unit")

	return cmd
}
