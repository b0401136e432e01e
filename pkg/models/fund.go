package models

import (
	"github.com/shopspring/decimal"
)

// FundParameters are the contribution parameters a professional fund
// publishes for a single year.
type FundParameters struct {
	Year                     int             `json:"year"`
	ContributionRate         decimal.Decimal `json:"contribution_rate"`          // percentage
	MinimumContribution      decimal.Decimal `json:"minimum_contribution"`       // absolute amount
	FixedAnnualContributions decimal.Decimal `json:"fixed_annual_contributions"` // absolute amount
}

// ProfessionalFund is a private pension fund with year-keyed
// contribution parameters.
type ProfessionalFund struct {
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Parameters []FundParameters `json:"parameters"`
}

// Validate enforces the fund invariants: at least one parameter set
// and no duplicate years.
func (f *ProfessionalFund) Validate() error {
	if f.Code == "" {
		return NewValidationError("code", "", "must be set")
	}
	if len(f.Parameters) == 0 {
		return NewValidationError("parameters", nil, "at least one parameter set is required")
	}
	seen := make(map[int]bool, len(f.Parameters))
	for _, p := range f.Parameters {
		if seen[p.Year] {
			return NewValidationError("parameters", p.Year, "duplicate year")
		}
		seen[p.Year] = true
	}
	return nil
}
