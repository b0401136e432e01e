package vat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		vat    *models.VAT
		want   string
	}{
		{"no VAT info means exempt", "1000", nil, "0"},
		{"standard 22%", "1000", &models.VAT{Type: models.VATStandard}, "220"},
		{"reduced 10%", "1000", &models.VAT{Type: models.VATReduced10}, "100"},
		{"reduced 5%", "1000", &models.VAT{Type: models.VATReduced5}, "50"},
		{"reduced 4%", "1000", &models.VAT{Type: models.VATReduced4}, "40"},
		{"custom rate", "1000", &models.VAT{Type: models.VATCustom, Rate: dec("13.5")}, "135"},
		{"cents preserved", "1234.56", &models.VAT{Type: models.VATStandard}, "271.6032"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount(dec(tt.amount), tt.vat)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestTotal(t *testing.T) {
	got, err := Total(dec("1000"), &models.VAT{Type: models.VATStandard})
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1220")), "got %s", got)

	got, err = Total(dec("1000"), nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1000")), "got %s", got)
}

func TestAmountRejectsInvalidInput(t *testing.T) {
	_, err := Amount(dec("1000"), &models.VAT{Type: models.VATCustom, Rate: dec("101")})
	assert.ErrorIs(t, err, ErrInvalidCustomRate)

	_, err = Amount(dec("1000"), &models.VAT{Type: models.VATCustom, Rate: dec("-1")})
	assert.ErrorIs(t, err, ErrInvalidCustomRate)

	_, err = Amount(dec("1000"), &models.VAT{Type: models.VATType("luxury")})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate(&models.VAT{Type: models.VATStandard}))
	assert.NoError(t, Validate(&models.VAT{Type: models.VATStandard, Rate: dec("22")}))
	assert.NoError(t, Validate(&models.VAT{Type: models.VATCustom, Rate: dec("8")}))

	assert.ErrorIs(t, Validate(&models.VAT{Type: models.VATStandard, Rate: dec("10")}), ErrRateMismatch)
	assert.ErrorIs(t, Validate(&models.VAT{Type: models.VATType("luxury")}), ErrUnknownType)
	assert.ErrorIs(t, Validate(&models.VAT{Type: models.VATCustom, Rate: dec("120")}), ErrInvalidCustomRate)
}
