package tax

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianmarioiamoni/pivabalance/internal/tax/contrib"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func invoicesTotaling(year int, amounts ...string) []models.Invoice {
	out := make([]models.Invoice, len(amounts))
	for i, a := range amounts {
		out[i] = models.Invoice{
			ID:         string(rune('a' + i)),
			Amount:     dec(a),
			IssueDate:  time.Date(year, time.March, 1+i, 12, 0, 0, 0, time.Local),
			FiscalYear: year,
		}
	}
	return out
}

// INPS settings with a zero manual rate isolate the regime tax in the
// result totals.
func noContribSettings(regime models.TaxRegime) *models.TaxSettings {
	s := &models.TaxSettings{
		TaxRegime:              regime,
		PensionSystem:          models.PensionINPS,
		InpsRateType:           models.InpsRateManual,
		ManualContributionRate: decPtr("0"),
	}
	if regime == models.RegimeForfettario {
		s.SubstituteRate = decPtr("5")
		s.ProfitabilityRate = decPtr("78")
	}
	return s
}

func TestCalculateForfettario(t *testing.T) {
	settings := noContribSettings(models.RegimeForfettario)

	result, err := NewCalculator().Calculate(Input{
		Invoices: invoicesTotaling(2024, "20000", "30000"),
		Settings: settings,
		Year:     2024,
	})
	require.NoError(t, err)

	assert.Equal(t, models.RegimeForfettario, result.Regime)
	assert.True(t, result.TotalIncome.Equal(dec("50000")), "total income %s", result.TotalIncome)
	assert.True(t, result.TaxableIncome.Equal(dec("39000")), "taxable income %s", result.TaxableIncome)
	assert.True(t, result.SubstituteTaxAmount.Equal(dec("1950")), "substitute tax %s", result.SubstituteTaxAmount)
	assert.True(t, result.IrpefAmount.IsZero(), "irpef must be zero under forfettario")
	assert.True(t, result.TotalTaxes.Equal(dec("1950")), "total taxes %s", result.TotalTaxes)
	assert.True(t, result.EffectiveRate.Equal(dec("3.9")), "effective rate %s", result.EffectiveRate)
}

func TestCalculateOrdinario(t *testing.T) {
	costs := []models.Cost{
		{ID: "c1", Amount: dec("10000"), Date: time.Date(2024, time.April, 2, 12, 0, 0, 0, time.Local), FiscalYear: 2024, Deductible: true},
		{ID: "c2", Amount: dec("5000"), Date: time.Date(2024, time.May, 9, 12, 0, 0, 0, time.Local), FiscalYear: 2024, Deductible: true},
		// Non-deductible costs must not reduce the taxable base.
		{ID: "c3", Amount: dec("2000"), Date: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local), FiscalYear: 2024},
	}

	result, err := NewCalculator().Calculate(Input{
		Invoices: invoicesTotaling(2024, "45000"),
		Costs:    costs,
		Settings: noContribSettings(models.RegimeOrdinario),
		Year:     2024,
	})
	require.NoError(t, err)

	assert.True(t, result.TaxableIncome.Equal(dec("30000")), "taxable income %s", result.TaxableIncome)
	// 6960 + (30000-28000) × 0.38
	assert.True(t, result.IrpefAmount.Equal(dec("7720")), "irpef %s", result.IrpefAmount)
	assert.True(t, result.SubstituteTaxAmount.IsZero(), "substitute tax must be zero under ordinario")
}

func TestCalculateOrdinarioCostsExceedIncome(t *testing.T) {
	costs := []models.Cost{
		{ID: "c1", Amount: dec("30000"), Date: time.Date(2024, time.April, 2, 12, 0, 0, 0, time.Local), FiscalYear: 2024, Deductible: true},
	}

	result, err := NewCalculator().Calculate(Input{
		Invoices: invoicesTotaling(2024, "20000"),
		Costs:    costs,
		Settings: noContribSettings(models.RegimeOrdinario),
		Year:     2024,
	})
	require.NoError(t, err)

	assert.True(t, result.TaxableIncome.IsZero(), "taxable income floored at zero, got %s", result.TaxableIncome)
	assert.True(t, result.IrpefAmount.IsZero(), "irpef %s", result.IrpefAmount)
}

func TestCalculateWithInpsContributions(t *testing.T) {
	settings := noContribSettings(models.RegimeForfettario)
	settings.InpsRateType = models.InpsRateProfessional
	settings.ManualContributionRate = nil

	result, err := NewCalculator().Calculate(Input{
		Invoices: invoicesTotaling(2024, "50000"),
		Settings: settings,
		Year:     2024,
	})
	require.NoError(t, err)

	// 39000 × 26.07%
	assert.True(t, result.ContributionsAmount.Equal(dec("10167.3")), "contributions %s", result.ContributionsAmount)
	assert.True(t, result.TotalTaxes.Equal(dec("12117.3")), "total taxes %s", result.TotalTaxes)
}

func TestCalculateWithProfessionalFund(t *testing.T) {
	settings := &models.TaxSettings{
		TaxRegime:          models.RegimeForfettario,
		SubstituteRate:     decPtr("5"),
		ProfitabilityRate:  decPtr("78"),
		PensionSystem:      models.PensionProfessionalFund,
		ProfessionalFundID: "CNPADC",
	}
	fund := &models.ProfessionalFund{
		Code: "CNPADC",
		Parameters: []models.FundParameters{
			{Year: 2024, ContributionRate: dec("12"), MinimumContribution: dec("2815")},
		},
	}

	result, err := NewCalculator().Calculate(Input{
		Invoices: invoicesTotaling(2024, "50000"),
		Settings: settings,
		Fund:     fund,
		Year:     2024,
	})
	require.NoError(t, err)

	// 39000 × 12%
	assert.True(t, result.ContributionsAmount.Equal(dec("4680")), "contributions %s", result.ContributionsAmount)

	t.Run("missing year surfaces as not found", func(t *testing.T) {
		_, err := NewCalculator().Calculate(Input{
			Invoices: invoicesTotaling(2023, "50000"),
			Settings: settings,
			Fund:     fund,
			Year:     2023,
		})
		assert.ErrorIs(t, err, contrib.ErrParametersNotFound)
	})

	t.Run("missing fund record", func(t *testing.T) {
		_, err := NewCalculator().Calculate(Input{
			Invoices: invoicesTotaling(2024, "50000"),
			Settings: settings,
			Year:     2024,
		})
		assert.ErrorIs(t, err, ErrFundRequired)
	})

	t.Run("wrong fund record", func(t *testing.T) {
		other := &models.ProfessionalFund{Code: "INARCASSA", Parameters: fund.Parameters}
		_, err := NewCalculator().Calculate(Input{
			Invoices: invoicesTotaling(2024, "50000"),
			Settings: settings,
			Fund:     other,
			Year:     2024,
		})
		assert.ErrorIs(t, err, ErrFundMismatch)
	})
}

func TestCalculateZeroIncome(t *testing.T) {
	result, err := NewCalculator().Calculate(Input{
		Settings: noContribSettings(models.RegimeForfettario),
		Year:     2024,
	})
	require.NoError(t, err)

	assert.True(t, result.TotalIncome.IsZero())
	assert.True(t, result.TotalTaxes.IsZero())
	assert.True(t, result.EffectiveRate.IsZero(), "effective rate must be zero without income, got %s", result.EffectiveRate)
}

func TestCalculateContributionDeduction(t *testing.T) {
	settings := noContribSettings(models.RegimeOrdinario)
	settings.PreviousYearContributions = decPtr("5000")

	result, err := NewCalculator().Calculate(Input{
		Invoices: invoicesTotaling(2024, "35000"),
		Settings: settings,
		Year:     2024,
	})
	require.NoError(t, err)

	assert.True(t, result.TaxableIncome.Equal(dec("30000")), "taxable income %s", result.TaxableIncome)
	assert.True(t, result.IrpefAmount.Equal(dec("7720")), "irpef %s", result.IrpefAmount)
}

func TestCalculateRejectsInvalidSettings(t *testing.T) {
	_, err := NewCalculator().Calculate(Input{Year: 2024})
	assert.ErrorIs(t, err, ErrMissingSettings)

	_, err = NewCalculator().Calculate(Input{
		Settings: &models.TaxSettings{TaxRegime: models.RegimeForfettario, PensionSystem: models.PensionINPS},
		Year:     2024,
	})
	require.Error(t, err)
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
