package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// ComparisonPoint pairs the totals of the same month across two years.
type ComparisonPoint struct {
	Month time.Month `json:"month"`
	Label string     `json:"label"`

	CurrentIncome    decimal.Decimal `json:"current_income"`
	PreviousIncome   decimal.Decimal `json:"previous_income"`
	CurrentExpenses  decimal.Decimal `json:"current_expenses"`
	PreviousExpenses decimal.Decimal `json:"previous_expenses"`
	CurrentNet       decimal.Decimal `json:"current_net"`
	PreviousNet      decimal.Decimal `json:"previous_net"`

	// IncomeGrowth is year-over-year income growth for the month,
	// following the shared zero-previous policy.
	IncomeGrowth decimal.Decimal `json:"income_growth"`
}

// YearComparison pairs same-month totals of currentYear against
// previousYear. Always returns 12 points.
func YearComparison(invoices []models.Invoice, costs []models.Cost, currentYear, previousYear int) []ComparisonPoint {
	current := CashFlow(invoices, costs, currentYear)
	previous := CashFlow(invoices, costs, previousYear)

	out := make([]ComparisonPoint, 12)
	for i := range out {
		out[i] = ComparisonPoint{
			Month:            current[i].Month,
			Label:            current[i].Label,
			CurrentIncome:    current[i].Income,
			PreviousIncome:   previous[i].Income,
			CurrentExpenses:  current[i].Expenses,
			PreviousExpenses: previous[i].Expenses,
			CurrentNet:       current[i].Net,
			PreviousNet:      previous[i].Net,
			IncomeGrowth:     Growth(current[i].Income, previous[i].Income),
		}
	}
	return out
}
