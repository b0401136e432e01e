package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gianmarioiamoni/pivabalance/internal/config"
	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/store"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "pivabalance",
	Short: "pivabalance - tax and cash-flow calculations for Italian freelancers",
	Long: `pivabalance computes Italian freelancer taxes from raw invoice and
cost records: forfettario substitute tax or progressive IRPEF,
INPS or professional-fund contributions, VAT, payment status, and
chart-ready cash-flow reports.

Records are read from JSON files in the data directory (PIVA_DATA_DIR,
default "data"): invoices.json, costs.json, settings.json, funds.json.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to pivabalance!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}

// loadConfig loads the environment configuration, falling back to
// defaults when nothing is configured.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log := logger.WithComponent("cmd")
		log.Warn().Err(err).Msg("Could not load configuration, using defaults")
		return &config.Config{DataDir: "data", SheetWorksheet: "Reports"}
	}
	return cfg
}

// openStore creates the record store for the configured data directory.
func openStore(cfg *config.Config) *store.Store {
	return store.New(cfg.DataDir)
}

// loadRecords loads invoices and costs together, the common case for
// every report.
func loadRecords(st *store.Store) ([]models.Invoice, []models.Cost, error) {
	invoices, err := st.Invoices()
	if err != nil {
		return nil, nil, err
	}
	costs, err := st.Costs()
	if err != nil {
		return nil, nil, err
	}
	return invoices, costs, nil
}

// outputJSON writes v as indented JSON to the given file, or stdout
// when the path is empty.
func outputJSON(v interface{}, outputPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
