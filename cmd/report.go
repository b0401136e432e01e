package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/analytics"
)

var reportCmd = &cobra.Command{
	Use:   "report [cashflow|trend|comparison]",
	Short: "Produce chart-ready monthly report series",
	Long: `Reshape the year's invoices and costs into a monthly time series:

  cashflow    income, expenses and net per month
  trend       cashflow plus month-over-month net growth
  comparison  same-month totals paired against the previous year`,
	Example: `  # Monthly cash flow for the current year
  pivabalance report cashflow

  # Trend for 2024, saved to a file
  pivabalance report trend --year 2024 -o trend-2024.json

  # 2024 against 2023
  pivabalance report comparison --year 2024 --previous-year 2023`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"cashflow", "trend", "comparison"},
	RunE:      runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().Int("year", 0, "Report year (default: PIVA_DEFAULT_YEAR or current year)")
	reportCmd.Flags().Int("previous-year", 0, "Comparison year (default: year - 1)")
	reportCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("report-cmd")

	flagYear, _ := cmd.Flags().GetInt("year")
	previousYear, _ := cmd.Flags().GetInt("previous-year")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg := loadConfig()
	year := cfg.Year(flagYear)
	if previousYear == 0 {
		previousYear = year - 1
	}

	kind := args[0]

	log.Info().
		Str("report", kind).
		Int("year", year).
		Msg("Building report")

	invoices, costs, err := loadRecords(openStore(cfg))
	if err != nil {
		return err
	}

	switch kind {
	case "cashflow":
		return outputJSON(analytics.CashFlow(invoices, costs, year), outputPath)
	case "trend":
		return outputJSON(analytics.Trend(analytics.CashFlow(invoices, costs, year)), outputPath)
	case "comparison":
		return outputJSON(analytics.YearComparison(invoices, costs, year, previousYear), outputPath)
	default:
		return fmt.Errorf("unknown report type: %s", kind)
	}
}
