package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// yearWindow returns the calendar-year boundaries for the given year
// in the date's own location: Jan 1 00:00:00 through the last
// nanosecond of Dec 31.
func yearWindow(year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
	return start, end
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// FilterInvoicesByYear returns the invoices issued within the calendar
// year. The input slice is not modified.
func FilterInvoicesByYear(invoices []models.Invoice, year int) []models.Invoice {
	from, to := yearWindow(year, time.Local)
	return FilterInvoicesByDateRange(invoices, from, to)
}

// FilterInvoicesByDateRange returns the invoices issued within
// [from, to], inclusive at both ends.
func FilterInvoicesByDateRange(invoices []models.Invoice, from, to time.Time) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inRange(inv.IssueDate, from, to) {
			out = append(out, inv)
		}
	}
	return out
}

// SortInvoicesByDate returns a new slice sorted by issue date,
// descending (newest first) unless ascending is requested. The sort is
// stable so same-day invoices keep their input order.
func SortInvoicesByDate(invoices []models.Invoice, ascending bool) []models.Invoice {
	out := make([]models.Invoice, len(invoices))
	copy(out, invoices)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].IssueDate.Before(out[j].IssueDate)
		}
		return out[i].IssueDate.After(out[j].IssueDate)
	})
	return out
}

// PaidInvoices returns the invoices with a recorded payment date.
func PaidInvoices(invoices []models.Invoice) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.IsPaid() {
			out = append(out, inv)
		}
	}
	return out
}

// UnpaidInvoices returns the invoices with no recorded payment date.
func UnpaidInvoices(invoices []models.Invoice) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if !inv.IsPaid() {
			out = append(out, inv)
		}
	}
	return out
}

// InvoiceStatistics summarizes the net amounts of the given invoices.
func InvoiceStatistics(invoices []models.Invoice) Statistics {
	amounts := make([]decimal.Decimal, len(invoices))
	for i, inv := range invoices {
		amounts[i] = inv.Amount
	}
	return statisticsOf(amounts)
}

// TotalInvoicesByFiscalYear sums invoice amounts attributed to the
// given fiscal year. Attribution follows the FiscalYear field, which
// may differ from the issue-date calendar year.
func TotalInvoicesByFiscalYear(invoices []models.Invoice, fiscalYear int) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.FiscalYear == fiscalYear {
			total = total.Add(inv.Amount)
		}
	}
	return total
}
