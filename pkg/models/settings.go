package models

import (
	"github.com/shopspring/decimal"
)

// TaxRegime selects how taxable income and income tax are computed.
type TaxRegime string

const (
	RegimeForfettario TaxRegime = "forfettario"
	RegimeOrdinario   TaxRegime = "ordinario"
)

// PensionSystem selects the contribution scheme.
type PensionSystem string

const (
	PensionINPS             PensionSystem = "INPS"
	PensionProfessionalFund PensionSystem = "PROFESSIONAL_FUND"
)

// InpsRateType selects one of the INPS gestione separata presets, or
// "manual" to use the Manual* fields below.
type InpsRateType string

const (
	InpsRateProfessional InpsRateType = "professional" // 26.07%
	InpsRateArtisan      InpsRateType = "artisan"      // 24.00%
	InpsRateMerchant     InpsRateType = "merchant"     // 24.48%
	InpsRateManual       InpsRateType = "manual"
)

// TaxSettings is the per-user tax configuration supplied by the
// settings store. The store validates regime consistency before the
// settings reach the engine; Validate re-checks the structural
// invariants so that an inconsistent object fails loudly instead of
// producing silently wrong numbers.
type TaxSettings struct {
	UserID    string    `json:"user_id"`
	TaxRegime TaxRegime `json:"tax_regime"`

	// Forfettario-only fields. Both must be set when the regime is
	// forfettario and absent otherwise.
	SubstituteRate    *decimal.Decimal `json:"substitute_rate,omitempty"`    // 5 or 25
	ProfitabilityRate *decimal.Decimal `json:"profitability_rate,omitempty"` // 0..100

	PensionSystem PensionSystem `json:"pension_system"`

	// ProfessionalFundID is set iff PensionSystem is PROFESSIONAL_FUND.
	ProfessionalFundID string `json:"professional_fund_id,omitempty"`

	// INPS configuration, used when PensionSystem is INPS.
	InpsRateType InpsRateType `json:"inps_rate_type,omitempty"`

	// Manual contribution parameters, used when InpsRateType is manual.
	ManualContributionRate         *decimal.Decimal `json:"manual_contribution_rate,omitempty"`
	ManualMinimumContribution      *decimal.Decimal `json:"manual_minimum_contribution,omitempty"`
	ManualFixedAnnualContributions *decimal.Decimal `json:"manual_fixed_annual_contributions,omitempty"`

	// PreviousYearContributions, when set, is deducted from taxable
	// income before income tax is applied (contributions paid are
	// deductible). Zero/nil disables the deduction.
	PreviousYearContributions *decimal.Decimal `json:"previous_year_contributions,omitempty"`
}

var validSubstituteRates = []int64{5, 25}

// Validate enforces the structural invariants of the settings object:
// forfettario fields present iff the regime is forfettario, fund ID
// present iff the pension system is a professional fund.
func (s *TaxSettings) Validate() error {
	switch s.TaxRegime {
	case RegimeForfettario:
		if s.SubstituteRate == nil {
			return NewValidationError("substitute_rate", nil, "required for the forfettario regime")
		}
		if !isValidSubstituteRate(*s.SubstituteRate) {
			return NewValidationError("substitute_rate", s.SubstituteRate.String(), "must be 5 or 25")
		}
		if s.ProfitabilityRate == nil {
			return NewValidationError("profitability_rate", nil, "required for the forfettario regime")
		}
		if s.ProfitabilityRate.IsNegative() || s.ProfitabilityRate.GreaterThan(decimal.NewFromInt(100)) {
			return NewValidationError("profitability_rate", s.ProfitabilityRate.String(), "must be between 0 and 100")
		}
	case RegimeOrdinario:
		if s.SubstituteRate != nil {
			return NewValidationError("substitute_rate", s.SubstituteRate.String(), "only valid for the forfettario regime")
		}
		if s.ProfitabilityRate != nil {
			return NewValidationError("profitability_rate", s.ProfitabilityRate.String(), "only valid for the forfettario regime")
		}
	default:
		return NewValidationError("tax_regime", string(s.TaxRegime), "must be forfettario or ordinario")
	}

	switch s.PensionSystem {
	case PensionProfessionalFund:
		if s.ProfessionalFundID == "" {
			return NewValidationError("professional_fund_id", "", "required for the PROFESSIONAL_FUND pension system")
		}
	case PensionINPS:
		if s.ProfessionalFundID != "" {
			return NewValidationError("professional_fund_id", s.ProfessionalFundID, "only valid for the PROFESSIONAL_FUND pension system")
		}
		if s.InpsRateType == InpsRateManual && s.ManualContributionRate == nil {
			return NewValidationError("manual_contribution_rate", nil, "required when the INPS rate type is manual")
		}
	default:
		return NewValidationError("pension_system", string(s.PensionSystem), "must be INPS or PROFESSIONAL_FUND")
	}

	return nil
}

func isValidSubstituteRate(rate decimal.Decimal) bool {
	for _, v := range validSubstituteRates {
		if rate.Equal(decimal.NewFromInt(v)) {
			return true
		}
	}
	return false
}
