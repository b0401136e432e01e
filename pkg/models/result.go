package models

import (
	"github.com/shopspring/decimal"
)

// TaxCalculationResult is the outcome of a full tax calculation for
// one user and one fiscal year. It is always derived on demand from
// the current records and never persisted.
//
// Exactly one of IrpefAmount / SubstituteTaxAmount is non-zero,
// depending on the regime. All amounts are raw decimals; rounding and
// currency formatting are the presentation layer's job.
type TaxCalculationResult struct {
	Regime TaxRegime `json:"regime"`
	Year   int       `json:"year"`

	TotalIncome   decimal.Decimal `json:"total_income"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`

	IrpefAmount         decimal.Decimal `json:"irpef_amount"`
	SubstituteTaxAmount decimal.Decimal `json:"substitute_tax_amount"`
	ContributionsAmount decimal.Decimal `json:"contributions_amount"`

	TotalTaxes decimal.Decimal `json:"total_taxes"`

	// EffectiveRate is TotalTaxes / TotalIncome × 100, zero when
	// there is no income.
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}
