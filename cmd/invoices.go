package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/aggregate"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/status"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/vat"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices with payment status, VAT and summary statistics",
	Long: `List the year's invoices sorted by issue date (newest first), each
with its derived payment status, VAT amount and gross total, followed
by summary statistics.

The payment status is recomputed on every run: an invoice is paid when
a payment date is recorded, overdue when unpaid more than 30 days past
issue, pending otherwise.`,
	Example: `  # All invoices of the current year
  pivabalance invoices

  # Only the overdue ones
  pivabalance invoices --status overdue

  # Oldest first, for 2023
  pivabalance invoices --year 2023 --sort asc`,
	Args: cobra.NoArgs,
	RunE: runInvoices,
}

// InvoiceRow is one invoice in the command output, with derived fields.
type InvoiceRow struct {
	models.Invoice
	Status      status.PaymentStatus `json:"status"`
	DaysOverdue int                  `json:"days_overdue,omitempty"`
	VATAmount   decimal.Decimal      `json:"vat_amount"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
}

// InvoicesOutput is the JSON output of the invoices command.
type InvoicesOutput struct {
	Year       int                  `json:"year"`
	Invoices   []InvoiceRow         `json:"invoices"`
	Statistics aggregate.Statistics `json:"statistics"`
}

func init() {
	rootCmd.AddCommand(invoicesCmd)

	invoicesCmd.Flags().Int("year", 0, "Calendar year (default: PIVA_DEFAULT_YEAR or current year)")
	invoicesCmd.Flags().String("status", "", "Filter by payment status: paid, pending or overdue")
	invoicesCmd.Flags().String("sort", "desc", "Sort by issue date: asc or desc")
	invoicesCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runInvoices(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoices-cmd")

	flagYear, _ := cmd.Flags().GetInt("year")
	statusFilter, _ := cmd.Flags().GetString("status")
	sortOrder, _ := cmd.Flags().GetString("sort")
	outputPath, _ := cmd.Flags().GetString("output")

	if sortOrder != "asc" && sortOrder != "desc" {
		return fmt.Errorf("invalid sort order: %s (want asc or desc)", sortOrder)
	}
	if statusFilter != "" &&
		statusFilter != string(status.Paid) &&
		statusFilter != string(status.Pending) &&
		statusFilter != string(status.Overdue) {
		return fmt.Errorf("invalid status filter: %s (want paid, pending or overdue)", statusFilter)
	}

	cfg := loadConfig()
	year := cfg.Year(flagYear)

	invoices, err := openStore(cfg).Invoices()
	if err != nil {
		return err
	}

	filtered := aggregate.FilterInvoicesByYear(invoices, year)
	sorted := aggregate.SortInvoicesByDate(filtered, sortOrder == "asc")

	now := time.Now()
	rows := make([]InvoiceRow, 0, len(sorted))
	kept := make([]models.Invoice, 0, len(sorted))
	for _, inv := range sorted {
		st := status.Of(&inv, now)
		if statusFilter != "" && string(st) != statusFilter {
			continue
		}

		vatAmount, err := vat.Amount(inv.Amount, inv.VAT)
		if err != nil {
			return fmt.Errorf("invoice %s: %w", inv.ID, err)
		}

		rows = append(rows, InvoiceRow{
			Invoice:     inv,
			Status:      st,
			DaysOverdue: status.DaysOverdue(&inv, now),
			VATAmount:   vatAmount,
			TotalAmount: inv.Amount.Add(vatAmount),
		})
		kept = append(kept, inv)
	}

	log.Info().
		Int("year", year).
		Int("count", len(rows)).
		Str("status_filter", statusFilter).
		Msg("Listed invoices")

	return outputJSON(InvoicesOutput{
		Year:       year,
		Invoices:   rows,
		Statistics: aggregate.InvoiceStatistics(kept),
	}, outputPath)
}
