// Package aggregate filters, sorts, and summarizes raw invoice and
// cost records. All functions are pure: inputs are never mutated and
// every result is a fresh slice or value.
package aggregate

import (
	"github.com/shopspring/decimal"
)

// Statistics summarizes a set of amounts. An empty input yields the
// zero value for every field, never NaN or a division by zero.
type Statistics struct {
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
}

func statisticsOf(amounts []decimal.Decimal) Statistics {
	if len(amounts) == 0 {
		return Statistics{}
	}

	total := decimal.Zero
	min := amounts[0]
	max := amounts[0]
	for _, a := range amounts {
		total = total.Add(a)
		min = decimal.Min(min, a)
		max = decimal.Max(max, a)
	}

	return Statistics{
		Total:   total,
		Count:   len(amounts),
		Average: total.Div(decimal.NewFromInt(int64(len(amounts)))),
		Min:     min,
		Max:     max,
	}
}
