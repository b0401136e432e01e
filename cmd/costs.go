package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/aggregate"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "List costs with summary statistics",
	Long: `List the year's costs sorted by date (newest first unless --sort asc),
followed by summary statistics. Use --deductible to keep only the
costs that reduce ordinario taxable income.`,
	Example: `  # All costs of the current year
  pivabalance costs

  # Deductible costs of 2024, oldest first
  pivabalance costs --year 2024 --deductible --sort asc`,
	Args: cobra.NoArgs,
	RunE: runCosts,
}

// CostsOutput is the JSON output of the costs command.
type CostsOutput struct {
	Year       int                  `json:"year"`
	Costs      []models.Cost        `json:"costs"`
	Statistics aggregate.Statistics `json:"statistics"`
}

func init() {
	rootCmd.AddCommand(costsCmd)

	costsCmd.Flags().Int("year", 0, "Calendar year (default: PIVA_DEFAULT_YEAR or current year)")
	costsCmd.Flags().Bool("deductible", false, "Only deductible costs")
	costsCmd.Flags().String("sort", "desc", "Sort by date: asc or desc")
	costsCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runCosts(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("costs-cmd")

	flagYear, _ := cmd.Flags().GetInt("year")
	deductibleOnly, _ := cmd.Flags().GetBool("deductible")
	sortOrder, _ := cmd.Flags().GetString("sort")
	outputPath, _ := cmd.Flags().GetString("output")

	if sortOrder != "asc" && sortOrder != "desc" {
		return fmt.Errorf("invalid sort order: %s (want asc or desc)", sortOrder)
	}

	cfg := loadConfig()
	year := cfg.Year(flagYear)

	costs, err := openStore(cfg).Costs()
	if err != nil {
		return err
	}

	filtered := aggregate.FilterCostsByYear(costs, year)
	if deductibleOnly {
		filtered = aggregate.DeductibleCosts(filtered)
	}
	sorted := aggregate.SortCostsByDate(filtered, sortOrder == "asc")

	log.Info().
		Int("year", year).
		Int("count", len(sorted)).
		Bool("deductible_only", deductibleOnly).
		Msg("Listed costs")

	return outputJSON(CostsOutput{
		Year:       year,
		Costs:      sorted,
		Statistics: aggregate.CostStatistics(sorted),
	}, outputPath)
}
