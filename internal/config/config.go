// Package config provides configuration management for benchtab.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidPrecision = errors.New("report.precision must be between 0 and 8")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrMissingConverter = errors.New("pdf.converter is required")
)

// Config represents the complete benchtab configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	PDF     PDFConfig     `yaml:"pdf"`
}

// ReportConfig controls markdown rendering.
type ReportConfig struct {
	// Precision is the number of decimal places for measurement and
	// ratio values.
	Precision int `yaml:"precision"`
	// AlignTables pads table columns to equal display width after
	// rendering.
	AlignTables bool `yaml:"align_tables"`
}

// OutputConfig defines where reports are written.
type OutputConfig struct {
	// Path is the default output file. Empty means standard output.
	Path string `yaml:"path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// PDFConfig configures the external document converter.
type PDFConfig struct {
	Converter string `yaml:"converter"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Precision:   2,
			AlignTables: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		PDF: PDFConfig{
			Converter: "pandoc",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields absent from the
// file keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Report.Precision < 0 || c.Report.Precision > 8 {
		return ErrInvalidPrecision
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.PDF.Converter == "" {
		return ErrMissingConverter
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Precision: %d, AlignTables: %t, Level: %s, Converter: %s}",
		c.Report.Precision,
		c.Report.AlignTables,
		c.Logging.Level,
		c.PDF.Converter,
	)
}
