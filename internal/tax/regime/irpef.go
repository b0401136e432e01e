package regime

import (
	"github.com/shopspring/decimal"
)

// irpefBracket is one row of the progressive IRPEF table. Base is the
// tax owed on all lower brackets, so the tax for an income inside the
// bracket is Base + (income − Floor) × Rate.
type irpefBracket struct {
	Floor   decimal.Decimal
	Ceiling decimal.Decimal // zero on the open-ended top bracket
	Rate    decimal.Decimal
	Base    decimal.Decimal
}

// Progressive IRPEF table. The top bracket has no ceiling.
var irpefBrackets = []irpefBracket{
	{Floor: decimal.Zero, Ceiling: decimal.NewFromInt(15000), Rate: decimal.NewFromFloat(0.23), Base: decimal.Zero},
	{Floor: decimal.NewFromInt(15000), Ceiling: decimal.NewFromInt(28000), Rate: decimal.NewFromFloat(0.27), Base: decimal.NewFromInt(3450)},
	{Floor: decimal.NewFromInt(28000), Ceiling: decimal.NewFromInt(55000), Rate: decimal.NewFromFloat(0.38), Base: decimal.NewFromInt(6960)},
	{Floor: decimal.NewFromInt(55000), Ceiling: decimal.NewFromInt(75000), Rate: decimal.NewFromFloat(0.41), Base: decimal.NewFromInt(17220)},
	{Floor: decimal.NewFromInt(75000), Rate: decimal.NewFromFloat(0.43), Base: decimal.NewFromInt(25420)},
}

// Irpef computes progressive IRPEF for the given taxable income under
// the ordinario regime. The calculation is marginal: each bracket's
// base already encodes the tax owed on the lower brackets, which keeps
// the function continuous at bracket boundaries. Taxable income at or
// below zero yields zero tax.
func Irpef(taxableIncome decimal.Decimal) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}

	b := bracketFor(taxableIncome)
	return b.Base.Add(taxableIncome.Sub(b.Floor).Mul(b.Rate))
}

// MarginalRate returns the IRPEF rate applied to the last euro of the
// given taxable income, as a fraction (0.23 .. 0.43). Zero for
// non-positive income.
func MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}
	return bracketFor(taxableIncome).Rate
}

// bracketFor finds the bracket containing the income. Incomes exactly
// on a boundary belong to the lower bracket; continuity makes the two
// readings equivalent.
func bracketFor(taxableIncome decimal.Decimal) irpefBracket {
	for _, b := range irpefBrackets {
		if b.Ceiling.IsZero() || taxableIncome.LessThanOrEqual(b.Ceiling) {
			return b
		}
	}
	return irpefBrackets[len(irpefBrackets)-1]
}
