// Package vat maps VAT types to their rates and derives VAT and gross
// amounts from net invoice amounts.
package vat

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

var hundred = decimal.NewFromInt(100)

// Fixed rates implied by the non-custom VAT types.
var typeRates = map[models.VATType]decimal.Decimal{
	models.VATStandard:  decimal.NewFromInt(22),
	models.VATReduced10: decimal.NewFromInt(10),
	models.VATReduced5:  decimal.NewFromInt(5),
	models.VATReduced4:  decimal.NewFromInt(4),
}

var (
	// ErrUnknownType is returned for a VAT type outside the supported set.
	ErrUnknownType = errors.New("unknown VAT type")

	// ErrInvalidCustomRate is returned when a custom VAT rate is outside 0-100.
	ErrInvalidCustomRate = errors.New("custom VAT rate must be between 0 and 100")

	// ErrRateMismatch is returned when a fixed VAT type carries a rate
	// that contradicts the type.
	ErrRateMismatch = errors.New("VAT rate does not match VAT type")
)

// Rate resolves the percentage rate for the given VAT info. Fixed
// types resolve to their statutory rates, custom uses the supplied
// rate. Nil VAT info (exempt invoice) resolves to zero.
func Rate(v *models.VAT) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, nil
	}
	if v.Type == models.VATCustom {
		if v.Rate.IsNegative() || v.Rate.GreaterThan(hundred) {
			return decimal.Zero, ErrInvalidCustomRate
		}
		return v.Rate, nil
	}
	rate, ok := typeRates[v.Type]
	if !ok {
		return decimal.Zero, ErrUnknownType
	}
	return rate, nil
}

// Validate checks that the type/rate pairing is internally consistent.
// The record store calls this at load time; the calculators then trust
// the pairing. A zero rate on a fixed type is tolerated and read as
// "rate implied by type".
func Validate(v *models.VAT) error {
	if v == nil {
		return nil
	}
	if v.Type == models.VATCustom {
		_, err := Rate(v)
		return err
	}
	implied, ok := typeRates[v.Type]
	if !ok {
		return ErrUnknownType
	}
	if !v.Rate.IsZero() && !v.Rate.Equal(implied) {
		return ErrRateMismatch
	}
	return nil
}

// Amount computes the VAT amount for a net amount: amount × rate / 100,
// zero when no VAT info is present.
func Amount(amount decimal.Decimal, v *models.VAT) (decimal.Decimal, error) {
	rate, err := Rate(v)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).Div(hundred), nil
}

// Total computes the gross amount: net amount plus VAT.
func Total(amount decimal.Decimal, v *models.VAT) (decimal.Decimal, error) {
	vatAmount, err := Amount(amount, v)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Add(vatAmount), nil
}
