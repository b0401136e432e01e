package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// FilterCostsByYear returns the costs dated within the calendar year.
// The input slice is not modified.
func FilterCostsByYear(costs []models.Cost, year int) []models.Cost {
	from, to := yearWindow(year, time.Local)
	return FilterCostsByDateRange(costs, from, to)
}

// FilterCostsByDateRange returns the costs dated within [from, to],
// inclusive at both ends.
func FilterCostsByDateRange(costs []models.Cost, from, to time.Time) []models.Cost {
	out := make([]models.Cost, 0, len(costs))
	for _, c := range costs {
		if inRange(c.Date, from, to) {
			out = append(out, c)
		}
	}
	return out
}

// SortCostsByDate returns a new slice sorted by date, descending
// unless ascending is requested.
func SortCostsByDate(costs []models.Cost, ascending bool) []models.Cost {
	out := make([]models.Cost, len(costs))
	copy(out, costs)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// DeductibleCosts returns only the costs flagged as deductible.
func DeductibleCosts(costs []models.Cost) []models.Cost {
	out := make([]models.Cost, 0, len(costs))
	for _, c := range costs {
		if c.Deductible {
			out = append(out, c)
		}
	}
	return out
}

// CostStatistics summarizes the amounts of the given costs.
func CostStatistics(costs []models.Cost) Statistics {
	amounts := make([]decimal.Decimal, len(costs))
	for i, c := range costs {
		amounts[i] = c.Amount
	}
	return statisticsOf(amounts)
}

// TotalCostsByFiscalYear sums cost amounts attributed to the given
// fiscal year. Set deductibleOnly to count only costs that reduce
// ordinario taxable income.
func TotalCostsByFiscalYear(costs []models.Cost, fiscalYear int, deductibleOnly bool) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		if c.FiscalYear != fiscalYear {
			continue
		}
		if deductibleOnly && !c.Deductible {
			continue
		}
		total = total.Add(c.Amount)
	}
	return total
}
