// Package store supplies validated records to the calculation engine
// from JSON files in a data directory: invoices.json, costs.json,
// settings.json and funds.json. Records that fail validation are
// rejected at load time so the calculators only ever see well-formed
// input.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/vat"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

const (
	invoicesFile = "invoices.json"
	costsFile    = "costs.json"
	settingsFile = "settings.json"
	fundsFile    = "funds.json"
)

// ErrFundNotFound is returned when funds.json has no fund with the
// requested code.
var ErrFundNotFound = errors.New("professional fund not found")

// LoadError reports a failed load of one record file.
type LoadError struct {
	Op   string
	File string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("store: %s failed for %s: %v", e.Op, e.File, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Store reads records from a data directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// New creates a store rooted at the given data directory.
func New(dir string) *Store {
	return &Store{
		dir: dir,
		log: logger.WithComponent("store"),
	}
}

// Invoices loads and validates all invoices.
func (s *Store) Invoices() ([]models.Invoice, error) {
	const op = "Invoices"

	var invoices []models.Invoice
	if err := s.readFile(op, invoicesFile, &invoices); err != nil {
		return nil, err
	}

	for i := range invoices {
		if err := invoices[i].Validate(); err != nil {
			return nil, &LoadError{Op: op, File: invoicesFile,
				Err: fmt.Errorf("invoice %s: %w", invoices[i].ID, err)}
		}
		if err := vat.Validate(invoices[i].VAT); err != nil {
			return nil, &LoadError{Op: op, File: invoicesFile,
				Err: fmt.Errorf("invoice %s: %w", invoices[i].ID, err)}
		}
	}

	s.log.Debug().Int("count", len(invoices)).Msg("Loaded invoices")
	return invoices, nil
}

// Costs loads and validates all costs.
func (s *Store) Costs() ([]models.Cost, error) {
	const op = "Costs"

	var costs []models.Cost
	if err := s.readFile(op, costsFile, &costs); err != nil {
		return nil, err
	}

	for i := range costs {
		if err := costs[i].Validate(); err != nil {
			return nil, &LoadError{Op: op, File: costsFile,
				Err: fmt.Errorf("cost %s: %w", costs[i].ID, err)}
		}
	}

	s.log.Debug().Int("count", len(costs)).Msg("Loaded costs")
	return costs, nil
}

// Settings loads and validates the user's tax settings.
func (s *Store) Settings() (*models.TaxSettings, error) {
	const op = "Settings"

	var settings models.TaxSettings
	if err := s.readFile(op, settingsFile, &settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, &LoadError{Op: op, File: settingsFile, Err: err}
	}

	return &settings, nil
}

// Fund loads the professional fund with the given code from
// funds.json. Returns ErrFundNotFound when no fund matches.
func (s *Store) Fund(code string) (*models.ProfessionalFund, error) {
	const op = "Fund"

	var funds []models.ProfessionalFund
	if err := s.readFile(op, fundsFile, &funds); err != nil {
		return nil, err
	}

	for i := range funds {
		if funds[i].Code != code {
			continue
		}
		if err := funds[i].Validate(); err != nil {
			return nil, &LoadError{Op: op, File: fundsFile, Err: err}
		}
		return &funds[i], nil
	}

	return nil, &LoadError{Op: op, File: fundsFile,
		Err: fmt.Errorf("%w: %s", ErrFundNotFound, code)}
}

func (s *Store) readFile(op, name string, v interface{}) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Op: op, File: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &LoadError{Op: op, File: path, Err: err}
	}
	return nil
}
