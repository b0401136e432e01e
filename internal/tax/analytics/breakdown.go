package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// BreakdownSlice is one slice of a tax-breakdown chart.
type BreakdownSlice struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Share  decimal.Decimal `json:"share"` // percentage of total taxes, 0 when total is 0
}

// TaxBreakdown reshapes a calculation result into chart slices:
// income tax (IRPEF or substitute tax, depending on the regime) and
// contributions, each with its share of the total tax load.
func TaxBreakdown(result *models.TaxCalculationResult) []BreakdownSlice {
	incomeTax := result.IrpefAmount
	incomeTaxLabel := "IRPEF"
	if result.Regime == models.RegimeForfettario {
		incomeTax = result.SubstituteTaxAmount
		incomeTaxLabel = "Substitute tax"
	}

	return []BreakdownSlice{
		{
			Label:  incomeTaxLabel,
			Amount: incomeTax,
			Share:  share(incomeTax, result.TotalTaxes),
		},
		{
			Label:  "Contributions",
			Amount: result.ContributionsAmount,
			Share:  share(result.ContributionsAmount, result.TotalTaxes),
		},
	}
}

func share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}
