// Package sheets exports report rows to a Google Sheet so the yearly
// figures can be shared without exposing the raw records.
package sheets

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
	"github.com/gianmarioiamoni/pivabalance/internal/tax/analytics"
	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// Service handles Google Sheets operations.
type Service struct {
	sheetsService *sheets.Service
	spreadsheetID string
	log           zerolog.Logger
}

// NewService creates a Google Sheets service for the spreadsheet
// behind the given URL. Credentials come from the environment:
// GOOGLE_APPLICATION_CREDENTIALS (file path) or GOOGLE_CREDENTIALS
// (inline JSON).
func NewService(ctx context.Context, sheetURL string) (*Service, error) {
	const op = "NewService"

	log := logger.WithComponent("sheets")

	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to extract spreadsheet ID: %w", op, err)
	}

	log.Debug().Str("spreadsheet_id", spreadsheetID).Msg("Extracted spreadsheet ID")

	var creds []byte
	if credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsFile != "" {
		creds, err = os.ReadFile(credsFile)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read credentials file: %w", op, err)
		}
	} else if credsJSON := os.Getenv("GOOGLE_CREDENTIALS"); credsJSON != "" {
		creds = []byte(credsJSON)
	} else {
		return nil, fmt.Errorf("%s: neither GOOGLE_APPLICATION_CREDENTIALS nor GOOGLE_CREDENTIALS is set", op)
	}

	config, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse credentials: %w", op, err)
	}

	client := config.Client(ctx)
	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create sheets service: %w", op, err)
	}

	return &Service{
		sheetsService: sheetsService,
		spreadsheetID: spreadsheetID,
		log:           log,
	}, nil
}

// extractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func extractSpreadsheetID(url string) (string, error) {
	re := regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	matches := re.FindStringSubmatch(url)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Google Sheets URL format")
	}

	return matches[1], nil
}

// AppendCashFlow appends one row per month of the trend series to the
// given sheet, preceded by a header row when the sheet is empty.
func (s *Service) AppendCashFlow(ctx context.Context, sheetName string, year int, points []analytics.TrendPoint) error {
	const op = "AppendCashFlow"

	s.log.Info().
		Str("sheet", sheetName).
		Int("year", year).
		Int("rows", len(points)).
		Msg("Exporting cash flow to Google Sheet")

	header := []interface{}{"Year", "Month", "Income", "Expenses", "Net", "Growth %"}
	values := [][]interface{}{header}
	for _, p := range points {
		values = append(values, []interface{}{
			year,
			p.Label,
			p.Income.String(),
			p.Expenses.String(),
			p.Net.String(),
			p.Growth.StringFixed(2),
		})
	}

	return s.append(ctx, op, sheetName, values)
}

// AppendTaxSummary appends one row with the yearly tax figures.
func (s *Service) AppendTaxSummary(ctx context.Context, sheetName string, result *models.TaxCalculationResult) error {
	const op = "AppendTaxSummary"

	s.log.Info().
		Str("sheet", sheetName).
		Int("year", result.Year).
		Str("regime", string(result.Regime)).
		Msg("Exporting tax summary to Google Sheet")

	incomeTax := result.IrpefAmount
	if result.Regime == models.RegimeForfettario {
		incomeTax = result.SubstituteTaxAmount
	}

	values := [][]interface{}{{
		result.Year,
		string(result.Regime),
		result.TotalIncome.String(),
		result.TaxableIncome.String(),
		incomeTax.String(),
		result.ContributionsAmount.String(),
		result.TotalTaxes.String(),
		result.EffectiveRate.StringFixed(2),
		time.Now().Format(time.RFC3339),
	}}

	return s.append(ctx, op, sheetName, values)
}

func (s *Service) append(ctx context.Context, op, sheetName string, values [][]interface{}) error {
	valueRange := &sheets.ValueRange{Values: values}

	_, err := s.sheetsService.Spreadsheets.Values.Append(
		s.spreadsheetID,
		sheetName+"!A:I",
		valueRange,
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: failed to append values to sheet: %w", op, err)
	}

	s.log.Info().
		Int("rows_written", len(values)).
		Str("sheet", sheetName).
		Msg("Rows written to Google Sheet")
	return nil
}
