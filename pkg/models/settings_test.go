package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func decPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func validForfettario() *TaxSettings {
	return &TaxSettings{
		UserID:            "u1",
		TaxRegime:         RegimeForfettario,
		SubstituteRate:    decPtr("5"),
		ProfitabilityRate: decPtr("78"),
		PensionSystem:     PensionINPS,
	}
}

func TestTaxSettingsValidate(t *testing.T) {
	if err := validForfettario().Validate(); err != nil {
		t.Fatalf("valid forfettario settings rejected: %v", err)
	}

	ordinario := &TaxSettings{
		TaxRegime:          RegimeOrdinario,
		PensionSystem:      PensionProfessionalFund,
		ProfessionalFundID: "CNPADC",
	}
	if err := ordinario.Validate(); err != nil {
		t.Fatalf("valid ordinario settings rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*TaxSettings)
	}{
		{"missing substitute rate", func(s *TaxSettings) { s.SubstituteRate = nil }},
		{"substitute rate outside 5/25", func(s *TaxSettings) { s.SubstituteRate = decPtr("15") }},
		{"missing profitability rate", func(s *TaxSettings) { s.ProfitabilityRate = nil }},
		{"profitability above 100", func(s *TaxSettings) { s.ProfitabilityRate = decPtr("120") }},
		{"unknown regime", func(s *TaxSettings) { s.TaxRegime = "semplificato" }},
		{"fund id without fund pension system", func(s *TaxSettings) { s.ProfessionalFundID = "CNPADC" }},
		{"fund pension system without fund id", func(s *TaxSettings) { s.PensionSystem = PensionProfessionalFund }},
		{"manual INPS without a rate", func(s *TaxSettings) { s.InpsRateType = InpsRateManual }},
		{"unknown pension system", func(s *TaxSettings) { s.PensionSystem = "NONE" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validForfettario()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}

	t.Run("forfettario fields rejected under ordinario", func(t *testing.T) {
		s := validForfettario()
		s.TaxRegime = RegimeOrdinario
		if err := s.Validate(); err == nil {
			t.Fatal("expected a validation error")
		}
	})
}
