package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/tax"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/analytics"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Compute the full tax picture for a fiscal year",
	Long: `Compute taxable income, income tax and pension contributions for one
fiscal year from the records in the data directory.

The regime comes from settings.json: forfettario applies the
profitability coefficient and the substitute tax rate, ordinario
subtracts deductible costs and applies progressive IRPEF brackets.
Contributions follow the configured pension system (INPS presets,
manual parameters, or a professional fund's year-keyed parameters
from funds.json).`,
	Example: `  # Current year, result to stdout (JSON)
  pivabalance tax

  # A specific fiscal year, saved to a file
  pivabalance tax --year 2024 -o taxes-2024.json

  # Include the chart-ready tax breakdown
  pivabalance tax --year 2024 --breakdown`,
	Args: cobra.NoArgs,
	RunE: runTax,
}

// TaxOutput is the JSON output of the tax command.
type TaxOutput struct {
	Result    *models.TaxCalculationResult `json:"result"`
	Breakdown []analytics.BreakdownSlice   `json:"breakdown,omitempty"`
}

func init() {
	rootCmd.AddCommand(taxCmd)

	taxCmd.Flags().Int("year", 0, "Fiscal year (default: PIVA_DEFAULT_YEAR or current year)")
	taxCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	taxCmd.Flags().Bool("breakdown", false, "Include the tax breakdown in the output")
}

func runTax(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("tax-cmd")

	flagYear, _ := cmd.Flags().GetInt("year")
	outputPath, _ := cmd.Flags().GetString("output")
	includeBreakdown, _ := cmd.Flags().GetBool("breakdown")

	cfg := loadConfig()
	year := cfg.Year(flagYear)

	log.Info().
		Int("year", year).
		Str("data_dir", cfg.DataDir).
		Msg("Starting tax calculation")

	st := openStore(cfg)

	invoices, costs, err := loadRecords(st)
	if err != nil {
		return err
	}
	settings, err := st.Settings()
	if err != nil {
		return err
	}

	var fund *models.ProfessionalFund
	if settings.PensionSystem == models.PensionProfessionalFund {
		fund, err = st.Fund(settings.ProfessionalFundID)
		if err != nil {
			return err
		}
	}

	result, err := tax.NewCalculator().Calculate(tax.Input{
		Invoices: invoices,
		Costs:    costs,
		Settings: settings,
		Fund:     fund,
		Year:     year,
	})
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("Tax calculation failed")
		return err
	}

	output := TaxOutput{Result: result}
	if includeBreakdown {
		output.Breakdown = analytics.TaxBreakdown(result)
	}

	return outputJSON(output, outputPath)
}
