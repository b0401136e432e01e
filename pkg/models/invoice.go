package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VATType identifies the VAT treatment applied to an invoice.
type VATType string

const (
	VATStandard  VATType = "standard"  // 22%
	VATReduced10 VATType = "reduced10" // 10%
	VATReduced5  VATType = "reduced5"  // 5%
	VATReduced4  VATType = "reduced4"  // 4%
	VATCustom    VATType = "custom"    // caller-supplied rate
)

// VAT describes the VAT applied to an invoice. Rate is a percentage
// (22 means 22%). For the fixed types the rate is implied by the type;
// for VATCustom the rate must be supplied explicitly.
type VAT struct {
	Type VATType         `json:"type"`
	Rate decimal.Decimal `json:"rate"`
}

// Invoice is a single issued invoice as supplied by the record store.
//
// Amounts are net of VAT and carry two decimal places. PaymentDate is
// nil while the invoice is unpaid.
type Invoice struct {
	// Core identifiers
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Number string `json:"number"` // Human-readable invoice number

	// Counterparty
	Client string `json:"client"`

	// Dates
	IssueDate   time.Time  `json:"issue_date"`
	PaymentDate *time.Time `json:"payment_date,omitempty"` // nil if unpaid

	// Amounts
	Amount decimal.Decimal `json:"amount"` // net amount, > 0, 2 decimals

	// FiscalYear is the tax year the invoice is attributed to. It may
	// differ from the issue-date calendar year (e.g. December work
	// invoiced in January).
	FiscalYear int `json:"fiscal_year"`

	// VAT info, nil when the invoice is VAT-exempt (forfettario regime).
	VAT *VAT `json:"vat,omitempty"`
}

// IsPaid reports whether a payment date has been recorded.
func (inv *Invoice) IsPaid() bool {
	return inv.PaymentDate != nil
}

// Validate checks the invariants the calculation engine relies on:
// a positive amount and a payment date that does not precede issue.
func (inv *Invoice) Validate() error {
	if !inv.Amount.IsPositive() {
		return NewValidationError("amount", inv.Amount.String(), "must be greater than zero")
	}
	if inv.PaymentDate != nil && inv.PaymentDate.Before(inv.IssueDate) {
		return NewValidationError("payment_date", inv.PaymentDate.Format("2006-01-02"),
			"must not precede the issue date")
	}
	if inv.FiscalYear <= 0 {
		return NewValidationError("fiscal_year", inv.FiscalYear, "must be set")
	}
	return nil
}
