package tax

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSettings is returned when no tax settings are supplied.
	ErrMissingSettings = errors.New("tax settings are required")

	// ErrFundRequired is returned when the pension system is a
	// professional fund but no fund record was supplied.
	ErrFundRequired = errors.New("professional fund record is required")

	// ErrFundMismatch is returned when the supplied fund does not match
	// the fund configured in the settings.
	ErrFundMismatch = errors.New("professional fund does not match settings")
)

// CalculationError wraps a failure of the tax calculation pipeline
// with the operation that failed.
type CalculationError struct {
	// Op is the operation that failed (e.g. "Calculate", "contributions").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *CalculationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("tax: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("tax: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *CalculationError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *CalculationError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
