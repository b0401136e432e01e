package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestStoreLoadsValidRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "invoices.json", `[
		{"id": "i1", "user_id": "u1", "number": "2024/001", "client": "ACME",
		 "issue_date": "2024-01-10T00:00:00Z", "amount": 1000.50, "fiscal_year": 2024,
		 "vat": {"type": "standard"}},
		{"id": "i2", "user_id": "u1", "number": "2024/002", "client": "ACME",
		 "issue_date": "2024-02-01T00:00:00Z", "payment_date": "2024-02-20T00:00:00Z",
		 "amount": 2000, "fiscal_year": 2024}
	]`)
	writeFile(t, dir, "costs.json", `[
		{"id": "c1", "user_id": "u1", "description": "laptop",
		 "date": "2024-03-05T00:00:00Z", "amount": 1200, "deductible": true, "fiscal_year": 2024}
	]`)
	writeFile(t, dir, "settings.json", `{
		"user_id": "u1", "tax_regime": "forfettario",
		"substitute_rate": 5, "profitability_rate": 78,
		"pension_system": "INPS", "inps_rate_type": "professional"
	}`)
	writeFile(t, dir, "funds.json", `[
		{"code": "CNPADC", "name": "Cassa Dottori Commercialisti",
		 "parameters": [{"year": 2024, "contribution_rate": 12, "minimum_contribution": 2815, "fixed_annual_contributions": 0}]}
	]`)

	s := New(dir)

	invoices, err := s.Invoices()
	if err != nil {
		t.Fatalf("Invoices: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(invoices))
	}
	if invoices[0].VAT == nil || invoices[0].VAT.Type != models.VATStandard {
		t.Fatalf("expected standard VAT on i1, got %+v", invoices[0].VAT)
	}
	if !invoices[1].IsPaid() {
		t.Fatal("expected i2 to be paid")
	}

	costs, err := s.Costs()
	if err != nil {
		t.Fatalf("Costs: %v", err)
	}
	if len(costs) != 1 || !costs[0].Deductible {
		t.Fatalf("unexpected costs: %+v", costs)
	}

	settings, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if settings.TaxRegime != models.RegimeForfettario {
		t.Fatalf("expected forfettario, got %s", settings.TaxRegime)
	}

	fund, err := s.Fund("CNPADC")
	if err != nil {
		t.Fatalf("Fund: %v", err)
	}
	if fund.Name != "Cassa Dottori Commercialisti" {
		t.Fatalf("unexpected fund: %+v", fund)
	}
}

func TestStoreRejectsInvalidRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "invoices.json", `[
		{"id": "bad", "issue_date": "2024-01-10T00:00:00Z", "amount": -5, "fiscal_year": 2024}
	]`)

	_, err := New(dir).Invoices()
	if err == nil {
		t.Fatal("expected a validation error for a negative amount")
	}
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if validationErr.Field != "amount" {
		t.Fatalf("expected the amount field to be flagged, got %s", validationErr.Field)
	}
}

func TestStoreRejectsInconsistentVAT(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "invoices.json", `[
		{"id": "i1", "issue_date": "2024-01-10T00:00:00Z", "amount": 100, "fiscal_year": 2024,
		 "vat": {"type": "standard", "rate": 10}}
	]`)

	_, err := New(dir).Invoices()
	if err == nil {
		t.Fatal("expected an error for a standard VAT type with a 10% rate")
	}
}

func TestStoreFundNotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "funds.json", `[]`)

	_, err := New(dir).Fund("MISSING")
	if !errors.Is(err, ErrFundNotFound) {
		t.Fatalf("expected ErrFundNotFound, got %v", err)
	}
}

func TestStoreMissingFile(t *testing.T) {
	_, err := New(t.TempDir()).Invoices()
	if err == nil {
		t.Fatal("expected an error for a missing invoices file")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected a LoadError, got %v", err)
	}
}
