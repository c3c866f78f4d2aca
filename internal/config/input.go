package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/domain"
	"gopkg.in/yaml.v3"
)

// MaxMonths bounds durations accepted from files and flags (100 years)
const MaxMonths = 1200

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario YAML
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		sc.RateBasis = sc.RateBasis.Normalize()
		sc.DurationUnit = sc.DurationUnit.Normalize()
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	if config.Locale != "" {
		if _, ok := domain.LookupLocale(config.Locale); !ok {
			return fmt.Errorf("unsupported locale %q", config.Locale)
		}
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}
	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(sc *domain.Scenario) error {
	if strings.TrimSpace(sc.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !sc.RateBasis.Valid() {
		return fmt.Errorf("rate_basis must be annual or monthly, got %q", sc.RateBasis)
	}
	if !sc.DurationUnit.Valid() {
		return fmt.Errorf("duration_unit must be months or years, got %q", sc.DurationUnit)
	}

	for field, v := range map[string]float64{
		"principal":            sc.Principal,
		"monthly_contribution": sc.MonthlyContribution,
		"rate":                 sc.NominalRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", field)
		}
	}

	if sc.Principal < 0 {
		return fmt.Errorf("principal cannot be negative")
	}
	if sc.NominalRate <= -100 {
		return fmt.Errorf("rate must be greater than -100%%")
	}
	if sc.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if err := CheckDuration(sc.Duration, sc.DurationUnit); err != nil {
		return err
	}
	return CheckResult(sc.CalculationInput)
}

// CheckResult rejects inputs whose result is NaN or overflows float64
func CheckResult(in domain.CalculationInput) error {
	if res := calculation.Calculate(in); !res.Finite() {
		return fmt.Errorf("rate of %v%% %s over %d months: %w",
			in.NominalRate, in.RateBasis.Normalize(), res.TotalMonths, calculation.ErrNonFinite)
	}
	return nil
}

// CheckDuration rejects durations longer than MaxMonths. Negative durations
// pass; the calculator runs them as zero months.
func CheckDuration(duration int, unit domain.DurationUnit) error {
	if duration > MaxMonths {
		return fmt.Errorf("duration of %d exceeds the %d month limit", duration, MaxMonths)
	}
	months := duration
	if unit.Normalize() == domain.DurationYears {
		months *= 12
	}
	if months > MaxMonths {
		return fmt.Errorf("duration of %d months exceeds the %d month limit", months, MaxMonths)
	}
	return nil
}
