package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cost is a business expense recorded by the freelancer.
type Cost struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Description string `json:"description"`

	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"` // > 0, 2 decimals

	// Deductible costs reduce taxable income under the ordinario
	// regime. Forfettario taxable income is derived from the
	// profitability coefficient instead, so the flag is ignored there.
	Deductible bool `json:"deductible"`

	// FiscalYear is the tax year the cost is attributed to.
	FiscalYear int `json:"fiscal_year"`
}

// Validate checks the invariants the calculation engine relies on.
func (c *Cost) Validate() error {
	if !c.Amount.IsPositive() {
		return NewValidationError("amount", c.Amount.String(), "must be greater than zero")
	}
	if c.Date.IsZero() {
		return NewValidationError("date", c.Date, "must be set")
	}
	if c.FiscalYear <= 0 {
		return NewValidationError("fiscal_year", c.FiscalYear, "must be set")
	}
	return nil
}
