package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
)

// Preferences is the optional TOML file with the user's defaults. Pointer
// fields distinguish "not set" from zero.
type Preferences struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Display  DisplayConfig  `toml:"display"`
}

// DefaultsConfig seeds the calculator input
type DefaultsConfig struct {
	Principal           *float64 `toml:"principal"`
	MonthlyContribution *float64 `toml:"monthly_contribution"`
	Rate                *float64 `toml:"rate"`
	RateBasis           *string  `toml:"rate_basis"`
	Duration            *int     `toml:"duration"`
	DurationUnit        *string  `toml:"duration_unit"`
}

// DisplayConfig controls output rendering
type DisplayConfig struct {
	Locale *string `toml:"locale"`
	Format *string `toml:"format"`
}

// LoadPreferences reads preferences from path. A missing file is not an error.
func LoadPreferences(path string) (Preferences, error) {
	if path == "" {
		return Preferences{}, fmt.Errorf("preferences path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Preferences{}, nil
		}
		return Preferences{}, fmt.Errorf("failed to stat preferences: %w", err)
	}
	var prefs Preferences
	if _, err := toml.DecodeFile(path, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	if err := prefs.Validate(); err != nil {
		return Preferences{}, fmt.Errorf("invalid preferences %s: %w", path, err)
	}
	return prefs, nil
}

// Validate checks the enumerated fields
func (p Preferences) Validate() error {
	if p.Defaults.RateBasis != nil {
		if _, err := domain.ParseRateBasis(*p.Defaults.RateBasis); err != nil {
			return err
		}
	}
	if p.Defaults.DurationUnit != nil {
		if _, err := domain.ParseDurationUnit(*p.Defaults.DurationUnit); err != nil {
			return err
		}
	}
	if p.Display.Locale != nil {
		if _, ok := domain.LookupLocale(*p.Display.Locale); !ok {
			return fmt.Errorf("unsupported locale %q", *p.Display.Locale)
		}
	}
	if p.Display.Format != nil && *p.Display.Format != "" {
		if output.GetFormatterByName(*p.Display.Format, domain.DefaultLocale) == nil {
			return fmt.Errorf("unsupported format %q (want one of %s)",
				*p.Display.Format, strings.Join(output.AvailableFormatAliases(), ", "))
		}
	}
	return nil
}

// Input applies the preferences on top of the built-in defaults
func (p Preferences) Input() domain.CalculationInput {
	in := domain.DefaultInput()
	d := p.Defaults
	if d.Principal != nil {
		in.Principal = *d.Principal
	}
	if d.MonthlyContribution != nil {
		in.MonthlyContribution = *d.MonthlyContribution
	}
	if d.Rate != nil {
		in.NominalRate = *d.Rate
	}
	if d.RateBasis != nil {
		if b, err := domain.ParseRateBasis(*d.RateBasis); err == nil {
			in.RateBasis = b
		}
	}
	if d.Duration != nil {
		in.Duration = *d.Duration
	}
	if d.DurationUnit != nil {
		if u, err := domain.ParseDurationUnit(*d.DurationUnit); err == nil {
			in.DurationUnit = u
		}
	}
	return in
}

// Locale returns the display locale, falling back to the default
func (p Preferences) Locale() domain.Locale {
	if p.Display.Locale != nil {
		if l, ok := domain.LookupLocale(*p.Display.Locale); ok {
			return l
		}
	}
	return domain.DefaultLocale
}

// Format returns the preferred output format or fallback
func (p Preferences) Format(fallback string) string {
	if p.Display.Format != nil && *p.Display.Format != "" {
		return *p.Display.Format
	}
	return fallback
}
