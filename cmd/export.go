package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/sheets"
	"github.com/gianmarioiamoni/pivabalance/internal/tax"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/analytics"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

var exportCmd = &cobra.Command{
	Use:   "export [tax|cashflow]",
	Short: "Export yearly figures to a Google Sheet",
	Long: `Export the tax summary or the monthly cash-flow trend for one year to
a Google Sheet.

Required environment variables:
  PIVA_SHEET_URL - URL of the target spreadsheet
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string`,
	Example: `  # Export this year's tax summary
  pivabalance export tax

  # Export the 2024 cash-flow trend to a named worksheet
  pivabalance export cashflow --year 2024 --worksheet "CashFlow 2024"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"tax", "cashflow"},
	RunE:      runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Int("year", 0, "Fiscal year (default: PIVA_DEFAULT_YEAR or current year)")
	exportCmd.Flags().String("worksheet", "", "Target worksheet name (default: PIVA_SHEET_WORKSHEET)")
	exportCmd.Flags().Int("timeout", 60, "Export timeout in seconds")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("export-cmd")

	flagYear, _ := cmd.Flags().GetInt("year")
	worksheet, _ := cmd.Flags().GetString("worksheet")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	cfg := loadConfig()
	year := cfg.Year(flagYear)
	if worksheet == "" {
		worksheet = cfg.SheetWorksheet
	}
	if cfg.SheetURL == "" {
		return fmt.Errorf("PIVA_SHEET_URL is required for export")
	}

	ctx, cancel := exportContext(timeoutSecs, log)
	defer cancel()

	svc, err := sheets.NewService(ctx, cfg.SheetURL)
	if err != nil {
		return err
	}

	st := openStore(cfg)
	invoices, costs, err := loadRecords(st)
	if err != nil {
		return err
	}

	switch args[0] {
	case "cashflow":
		trend := analytics.Trend(analytics.CashFlow(invoices, costs, year))
		return svc.AppendCashFlow(ctx, worksheet, year, trend)
	case "tax":
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
			return err
		}
		return svc.AppendTaxSummary(ctx, worksheet, result)
	default:
		return fmt.Errorf("unknown export type: %s", args[0])
	}
}

// exportContext creates a context with a timeout that is also
// canceled on SIGINT/SIGTERM, so an interrupted export fails cleanly.
func exportContext(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Warn().Str("signal", sig.String()).Msg("Export interrupted by signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
