package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownProperty is returned when a selected property is not in the configured list.
var ErrUnknownProperty = errors.New("unknown property")

// InputParser handles parsing of input configuration and data files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Keys absent from the
// file keep their values from domain.DefaultConfiguration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateRates(&config.Rates); err != nil {
		return fmt.Errorf("rates validation failed: %w", err)
	}
	if err := ip.validateReport(&config.Report); err != nil {
		return fmt.Errorf("report validation failed: %w", err)
	}
	for i, p := range config.Properties {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("property %d has an empty name", i)
		}
	}
	return nil
}

// validateRates validates the two-tier rate schedule
func (ip *InputParser) validateRates(rates *domain.RateConfig) error {
	one := decimal.NewFromInt(1)
	if rates.LowerRate.IsNegative() || rates.LowerRate.GreaterThan(one) {
		return fmt.Errorf("lower rate must be between 0 and 1, got %s", rates.LowerRate)
	}
	if rates.HigherRate.IsNegative() || rates.HigherRate.GreaterThan(one) {
		return fmt.Errorf("higher rate must be between 0 and 1, got %s", rates.HigherRate)
	}
	if _, err := rates.RateSchedule(); err != nil {
		return err
	}
	return nil
}

// validateReport validates rendering and aggregation settings
func (ip *InputParser) validateReport(report *domain.ReportConfig) error {
	if report.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	if strings.TrimSpace(report.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// ValidateProperties checks each selected property against the configured
// property list, ignoring case and surrounding space. An empty configured
// list accepts any property.
func (ip *InputParser) ValidateProperties(config *domain.Configuration, selected []string) error {
	if len(config.Properties) == 0 {
		return nil
	}
	for _, sel := range selected {
		if !knownProperty(config.Properties, sel) {
			return fmt.Errorf("%w: %q (configured: %s)", ErrUnknownProperty, sel, strings.Join(config.Properties, ", "))
		}
	}
	return nil
}

func knownProperty(properties []string, name string) bool {
	name = strings.TrimSpace(name)
	for _, p := range properties {
		if strings.EqualFold(strings.TrimSpace(p), name) {
			return true
		}
	}
	return false
}
