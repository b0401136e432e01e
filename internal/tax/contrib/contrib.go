// Package contrib computes pension contributions for the INPS
// gestione separata and for private professional funds.
package contrib

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Parameters are the inputs of a contribution calculation, either an
// INPS preset, the user's manual settings, or one year of a
// professional fund's published parameters.
type Parameters struct {
	ContributionRate         decimal.Decimal // percentage
	MinimumContribution      decimal.Decimal // absolute amount
	FixedAnnualContributions decimal.Decimal // absolute amount
}

// Compute applies the common contribution formula:
//
//	contribution = max(taxableIncome × rate / 100, minimum) + fixed
//
// so the result is never below the minimum plus the fixed annual
// amounts, whatever the income. Negative inputs are rejected.
func Compute(taxableIncome decimal.Decimal, p Parameters) (decimal.Decimal, error) {
	if taxableIncome.IsNegative() {
		return decimal.Zero, ErrNegativeTaxableIncome
	}
	if p.ContributionRate.IsNegative() || p.ContributionRate.GreaterThan(hundred) {
		return decimal.Zero, ErrInvalidContributionRate
	}
	if p.MinimumContribution.IsNegative() || p.FixedAnnualContributions.IsNegative() {
		return decimal.Zero, ErrInvalidContributionParams
	}

	proportional := taxableIncome.Mul(p.ContributionRate).Div(hundred)
	base := decimal.Max(proportional, p.MinimumContribution)
	return base.Add(p.FixedAnnualContributions), nil
}
