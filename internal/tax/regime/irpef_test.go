package regime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIrpef(t *testing.T) {
	tests := []struct {
		name    string
		taxable string
		want    string
	}{
		{"zero income", "0", "0"},
		{"negative income", "-5000", "0"},
		{"inside first bracket", "10000", "2300"},
		{"first bracket ceiling", "15000", "3450"},
		{"inside second bracket", "20000", "4800"},
		{"second bracket ceiling", "28000", "6960"},
		{"inside third bracket", "30000", "7720"},
		{"third bracket ceiling", "55000", "17220"},
		{"inside fourth bracket", "60000", "19270"},
		{"fourth bracket ceiling", "75000", "25420"},
		{"inside top bracket", "100000", "36170"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Irpef(dec(tt.taxable))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

// The marginal table must be continuous: the tax one cent above a
// boundary equals the boundary tax plus one cent at the higher rate.
func TestIrpefContinuityAtBoundaries(t *testing.T) {
	boundaries := []struct {
		ceiling  string
		atTax    string
		nextRate string
	}{
		{"15000", "3450", "0.27"},
		{"28000", "6960", "0.38"},
		{"55000", "17220", "0.41"},
		{"75000", "25420", "0.43"},
	}

	cent := dec("0.01")
	for _, b := range boundaries {
		at := Irpef(dec(b.ceiling))
		assert.True(t, at.Equal(dec(b.atTax)), "tax at %s: got %s, want %s", b.ceiling, at, b.atTax)

		above := Irpef(dec(b.ceiling).Add(cent))
		want := dec(b.atTax).Add(cent.Mul(dec(b.nextRate)))
		assert.True(t, above.Equal(want), "tax just above %s: got %s, want %s", b.ceiling, above, want)
	}
}

func TestMarginalRate(t *testing.T) {
	tests := []struct {
		taxable string
		want    string
	}{
		{"0", "0"},
		{"10000", "0.23"},
		{"15000", "0.23"},
		{"15000.01", "0.27"},
		{"40000", "0.38"},
		{"70000", "0.41"},
		{"200000", "0.43"},
	}

	for _, tt := range tests {
		got := MarginalRate(dec(tt.taxable))
		assert.True(t, got.Equal(dec(tt.want)), "marginal rate at %s: got %s, want %s", tt.taxable, got, tt.want)
	}
}

func TestIrpefMonotonicity(t *testing.T) {
	prev := decimal.Zero
	for income := 1000; income <= 120000; income += 1000 {
		tax := Irpef(decimal.NewFromInt(int64(income)))
		assert.True(t, tax.GreaterThan(prev), "tax at %d must exceed tax at %d", income, income-1000)
		prev = tax
	}
}
