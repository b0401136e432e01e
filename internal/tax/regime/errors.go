package regime

import "errors"

// Domain errors for regime calculations. Rates are validated by the
// settings model before they reach the engine; the calculators still
// reject out-of-domain values instead of clamping them, so that a bad
// settings object fails loudly rather than producing wrong taxes.
var (
	// ErrNegativeIncome is returned when total income is negative.
	ErrNegativeIncome = errors.New("total income must not be negative")

	// ErrInvalidProfitabilityRate is returned when the profitability
	// coefficient is outside the 0-100 range.
	ErrInvalidProfitabilityRate = errors.New("profitability rate must be between 0 and 100")

	// ErrInvalidSubstituteRate is returned when the substitute tax
	// rate is neither 5 nor 25.
	ErrInvalidSubstituteRate = errors.New("substitute rate must be 5 or 25")
)
