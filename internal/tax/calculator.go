// Package tax is the calculation engine façade: it takes raw invoice
// and cost records plus the user's tax settings and produces the full
// tax picture for one fiscal year, delegating to the regime, contrib,
// and aggregate subpackages.
package tax

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/aggregate"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/contrib"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/regime"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

var hundred = decimal.NewFromInt(100)

// Input carries everything a full calculation needs. Records are
// assumed to be validated at the storage boundary; Fund is required
// iff the settings select a professional fund.
type Input struct {
	Invoices []models.Invoice
	Costs    []models.Cost
	Settings *models.TaxSettings
	Fund     *models.ProfessionalFund
	Year     int
}

// Calculator runs the aggregation → regime tax → contributions
// pipeline. It is stateless and safe for concurrent use.
type Calculator struct {
	log zerolog.Logger
}

// NewCalculator creates a new tax calculator.
func NewCalculator() *Calculator {
	return &Calculator{
		log: logger.WithComponent("tax-calculator"),
	}
}

// Calculate computes the tax calculation result for one fiscal year:
// total income by fiscal-year attribution, taxable income and income
// tax per the configured regime, contributions per the configured
// pension system, and the derived totals. The result is always
// computed from the current inputs, never cached or stored.
func (c *Calculator) Calculate(in Input) (*models.TaxCalculationResult, error) {
	const op = "Calculate"

	if in.Settings == nil {
		return nil, &CalculationError{Op: op, Err: ErrMissingSettings}
	}
	if err := in.Settings.Validate(); err != nil {
		return nil, &CalculationError{Op: op, Err: err, Details: "invalid settings"}
	}

	totalIncome := aggregate.TotalInvoicesByFiscalYear(in.Invoices, in.Year)

	c.log.Debug().
		Int("year", in.Year).
		Str("regime", string(in.Settings.TaxRegime)).
		Str("total_income", totalIncome.String()).
		Msg("Starting tax calculation")

	result := &models.TaxCalculationResult{
		Regime:      in.Settings.TaxRegime,
		Year:        in.Year,
		TotalIncome: totalIncome,
	}

	var err error
	switch in.Settings.TaxRegime {
	case models.RegimeForfettario:
		err = c.applyForfettario(in, totalIncome, result)
	case models.RegimeOrdinario:
		err = c.applyOrdinario(in, totalIncome, result)
	}
	if err != nil {
		return nil, err
	}

	contributions, err := c.contributions(in, result.TaxableIncome)
	if err != nil {
		return nil, err
	}
	result.ContributionsAmount = contributions

	result.TotalTaxes = result.IrpefAmount.
		Add(result.SubstituteTaxAmount).
		Add(result.ContributionsAmount)

	if totalIncome.IsPositive() {
		result.EffectiveRate = result.TotalTaxes.Div(totalIncome).Mul(hundred)
	} else {
		result.EffectiveRate = decimal.Zero
	}

	c.log.Info().
		Int("year", in.Year).
		Str("regime", string(in.Settings.TaxRegime)).
		Str("taxable_income", result.TaxableIncome.String()).
		Str("total_taxes", result.TotalTaxes.String()).
		Str("effective_rate", result.EffectiveRate.String()).
		Msg("Tax calculation completed")

	return result, nil
}

func (c *Calculator) applyForfettario(in Input, totalIncome decimal.Decimal, result *models.TaxCalculationResult) error {
	const op = "forfettario"

	res, err := regime.Forfettario(totalIncome, *in.Settings.ProfitabilityRate, *in.Settings.SubstituteRate)
	if err != nil {
		return &CalculationError{Op: op, Err: err}
	}

	taxable := c.deductContributions(res.TaxableIncome, in.Settings)
	if taxable.Equal(res.TaxableIncome) {
		result.TaxableIncome = res.TaxableIncome
		result.SubstituteTaxAmount = res.SubstituteTax
		return nil
	}

	// Contribution deduction changed the base, recompute the tax on it.
	result.TaxableIncome = taxable
	result.SubstituteTaxAmount = taxable.Mul(*in.Settings.SubstituteRate).Div(hundred)
	return nil
}

func (c *Calculator) applyOrdinario(in Input, totalIncome decimal.Decimal, result *models.TaxCalculationResult) error {
	deductible := aggregate.TotalCostsByFiscalYear(in.Costs, in.Year, true)

	taxable := totalIncome.Sub(deductible)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	taxable = c.deductContributions(taxable, in.Settings)

	result.TaxableIncome = taxable
	result.IrpefAmount = regime.Irpef(taxable)
	return nil
}

// deductContributions subtracts previous-year contributions from the
// taxable base, floored at zero. Disabled unless configured.
func (c *Calculator) deductContributions(taxable decimal.Decimal, settings *models.TaxSettings) decimal.Decimal {
	if settings.PreviousYearContributions == nil || !settings.PreviousYearContributions.IsPositive() {
		return taxable
	}
	out := taxable.Sub(*settings.PreviousYearContributions)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

func (c *Calculator) contributions(in Input, taxableIncome decimal.Decimal) (decimal.Decimal, error) {
	const op = "contributions"

	if in.Settings.PensionSystem == models.PensionProfessionalFund {
		if in.Fund == nil {
			return decimal.Zero, &CalculationError{Op: op, Err: ErrFundRequired}
		}
		if in.Fund.Code != in.Settings.ProfessionalFundID {
			return decimal.Zero, &CalculationError{
				Op:      op,
				Err:     ErrFundMismatch,
				Details: in.Fund.Code,
			}
		}
		amount, err := contrib.ComputeForFund(taxableIncome, in.Fund, in.Year)
		if err != nil {
			return decimal.Zero, &CalculationError{Op: op, Err: err}
		}
		return amount, nil
	}

	params, err := contrib.InpsParameters(in.Settings)
	if err != nil {
		return decimal.Zero, &CalculationError{Op: op, Err: err}
	}
	amount, err := contrib.Compute(taxableIncome, params)
	if err != nil {
		return decimal.Zero, &CalculationError{Op: op, Err: err}
	}
	return amount, nil
}
