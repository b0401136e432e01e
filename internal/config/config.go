package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gianmarioiamoni/pivabalance/internal/logger"
)

type Config struct {
	// Record store configuration
	DataDir string // directory holding invoices.json, costs.json, settings.json, funds.json

	// Default fiscal year for commands that don't pass --year.
	// Zero means "current calendar year".
	DefaultYear int

	// Google Sheets export configuration (optional, export command only)
	SheetURL       string
	SheetWorksheet string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		DataDir:        getEnv("PIVA_DATA_DIR", "data"),
		SheetURL:       getEnv("PIVA_SHEET_URL", ""),
		SheetWorksheet: getEnv("PIVA_SHEET_WORKSHEET", "Reports"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:  getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:      getEnv("LOG_OUTPUT", "stderr"),
	}

	if raw := os.Getenv("PIVA_DEFAULT_YEAR"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config validation failed: PIVA_DEFAULT_YEAR must be a year: %w", err)
		}
		config.DefaultYear = year
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("PIVA_DATA_DIR must not be empty")
	}
	if c.DefaultYear != 0 && (c.DefaultYear < 1900 || c.DefaultYear > 2200) {
		return fmt.Errorf("PIVA_DEFAULT_YEAR out of range: %d", c.DefaultYear)
	}
	return nil
}

// Year resolves the fiscal year to operate on: the flag value if set,
// else the configured default, else the current calendar year.
func (c *Config) Year(flagYear int) int {
	if flagYear != 0 {
		return flagYear
	}
	if c.DefaultYear != 0 {
		return c.DefaultYear
	}
	return time.Now().Year()
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
