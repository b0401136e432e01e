package contrib

import (
	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// ParametersForYear selects the fund parameter set for the given year.
// Only an exact year match counts: funds publish their parameters per
// year and applying another year's rates would be a silent guess, so a
// missing year surfaces as ErrParametersNotFound.
func ParametersForYear(fund *models.ProfessionalFund, year int) (Parameters, error) {
	for _, p := range fund.Parameters {
		if p.Year == year {
			return Parameters{
				ContributionRate:         p.ContributionRate,
				MinimumContribution:      p.MinimumContribution,
				FixedAnnualContributions: p.FixedAnnualContributions,
			}, nil
		}
	}
	return Parameters{}, &FundLookupError{FundCode: fund.Code, Year: year, Err: ErrParametersNotFound}
}

// ComputeForFund computes the contribution owed to a professional fund
// for the given year, selecting the fund's parameters by exact year.
func ComputeForFund(taxableIncome decimal.Decimal, fund *models.ProfessionalFund, year int) (decimal.Decimal, error) {
	params, err := ParametersForYear(fund, year)
	if err != nil {
		return decimal.Zero, err
	}
	return Compute(taxableIncome, params)
}
