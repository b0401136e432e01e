package regime

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ForfettarioResult holds the two figures the flat-rate regime
// produces. No rounding is applied; display formatting is the
// presentation layer's job.
type ForfettarioResult struct {
	TaxableIncome decimal.Decimal
	SubstituteTax decimal.Decimal
}

// Forfettario computes taxable income and substitute tax under the
// flat-rate regime:
//
//	taxableIncome = totalIncome × profitabilityRate / 100
//	substituteTax = taxableIncome × substituteRate / 100
//
// profitabilityRate is the ATECO profitability coefficient (0-100),
// substituteRate is 5 (startup relief) or 25. Out-of-domain inputs are
// rejected, never clamped.
func Forfettario(totalIncome, profitabilityRate, substituteRate decimal.Decimal) (ForfettarioResult, error) {
	if totalIncome.IsNegative() {
		return ForfettarioResult{}, ErrNegativeIncome
	}
	if profitabilityRate.IsNegative() || profitabilityRate.GreaterThan(hundred) {
		return ForfettarioResult{}, ErrInvalidProfitabilityRate
	}
	if !substituteRate.Equal(decimal.NewFromInt(5)) && !substituteRate.Equal(decimal.NewFromInt(25)) {
		return ForfettarioResult{}, ErrInvalidSubstituteRate
	}

	taxable := totalIncome.Mul(profitabilityRate).Div(hundred)
	tax := taxable.Mul(substituteRate).Div(hundred)

	return ForfettarioResult{
		TaxableIncome: taxable,
		SubstituteTax: tax,
	}, nil
}
