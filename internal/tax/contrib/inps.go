package contrib

import (
	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// INPS gestione separata presets. Artisans and merchants pay a lower
// rate but owe fixed minimum contributions on a statutory minimale.
var inpsPresets = map[models.InpsRateType]Parameters{
	models.InpsRateProfessional: {
		ContributionRate: decimal.NewFromFloat(26.07),
	},
	models.InpsRateArtisan: {
		ContributionRate:         decimal.NewFromFloat(24.00),
		MinimumContribution:      decimal.NewFromFloat(4427.04),
		FixedAnnualContributions: decimal.Zero,
	},
	models.InpsRateMerchant: {
		ContributionRate:         decimal.NewFromFloat(24.48),
		MinimumContribution:      decimal.NewFromFloat(4515.43),
		FixedAnnualContributions: decimal.Zero,
	},
}

// InpsParameters resolves the contribution parameters for the user's
// INPS configuration: a preset rate type, or the manual fields when
// the rate type is manual. An empty rate type defaults to the
// professional (gestione separata) preset.
func InpsParameters(settings *models.TaxSettings) (Parameters, error) {
	rateType := settings.InpsRateType
	if rateType == "" {
		rateType = models.InpsRateProfessional
	}

	if rateType == models.InpsRateManual {
		p := Parameters{}
		if settings.ManualContributionRate != nil {
			p.ContributionRate = *settings.ManualContributionRate
		}
		if settings.ManualMinimumContribution != nil {
			p.MinimumContribution = *settings.ManualMinimumContribution
		}
		if settings.ManualFixedAnnualContributions != nil {
			p.FixedAnnualContributions = *settings.ManualFixedAnnualContributions
		}
		return p, nil
	}

	preset, ok := inpsPresets[rateType]
	if !ok {
		return Parameters{}, ErrUnknownRateType
	}
	return preset, nil
}
