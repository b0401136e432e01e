package contrib

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeTaxableIncome is returned when the taxable income is negative.
	ErrNegativeTaxableIncome = errors.New("taxable income must not be negative")

	// ErrInvalidContributionRate is returned when the rate is outside 0-100.
	ErrInvalidContributionRate = errors.New("contribution rate must be between 0 and 100")

	// ErrInvalidContributionParams is returned when minimum or fixed
	// contributions are negative.
	ErrInvalidContributionParams = errors.New("contribution parameters must not be negative")

	// ErrParametersNotFound is returned when a professional fund has
	// no parameter set for the requested year. The engine never guesses
	// a nearest year; the caller decides how to handle the gap.
	ErrParametersNotFound = errors.New("no fund parameters for the requested year")

	// ErrUnknownRateType is returned for an unrecognized INPS rate type.
	ErrUnknownRateType = errors.New("unknown INPS rate type")
)

// FundLookupError reports a failed professional-fund parameter lookup
// with the fund and year that were requested.
type FundLookupError struct {
	FundCode string
	Year     int
	Err      error
}

// Error implements the error interface.
func (e *FundLookupError) Error() string {
	return fmt.Sprintf("contrib: fund %s, year %d: %v", e.FundCode, e.Year, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *FundLookupError) Unwrap() error {
	return e.Err
}
