// Package analytics reshapes aggregated records into chart-ready
// time series: monthly cash flow, trend with growth rates, year
// comparisons, and tax breakdowns.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// MonthlyPoint is one month of cash flow.
type MonthlyPoint struct {
	Month    time.Month      `json:"month"`
	Label    string          `json:"label"` // short month name, e.g. "Jan"
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// CashFlow produces one data point per month of the given calendar
// year: invoice income and cost expenses attributed by date, with
// net = income − expenses. Always returns 12 points, zero-valued for
// empty months.
func CashFlow(invoices []models.Invoice, costs []models.Cost, year int) []MonthlyPoint {
	points := make([]MonthlyPoint, 12)
	for m := time.January; m <= time.December; m++ {
		points[m-1] = MonthlyPoint{
			Month:    m,
			Label:    m.String()[:3],
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		}
	}

	for _, inv := range invoices {
		if inv.IssueDate.Year() != year {
			continue
		}
		p := &points[inv.IssueDate.Month()-1]
		p.Income = p.Income.Add(inv.Amount)
	}
	for _, c := range costs {
		if c.Date.Year() != year {
			continue
		}
		p := &points[c.Date.Month()-1]
		p.Expenses = p.Expenses.Add(c.Amount)
	}

	for i := range points {
		points[i].Net = points[i].Income.Sub(points[i].Expenses)
	}
	return points
}
