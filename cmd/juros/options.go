package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/config"
	"github.com/rgehrsitz/juros/internal/domain"
)

// runContext is what every command needs before doing work
type runContext struct {
	prefs  config.Preferences
	locale domain.Locale
	// localeSet reports an explicit --locale, which beats a scenario file's locale
	localeSet bool
	logger    calculation.Logger
}

func loadRunContext(cmd *cobra.Command) (*runContext, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPreferencesPath()
	}
	prefs, err := config.LoadPreferences(path)
	if err != nil {
		return nil, err
	}

	rc := &runContext{
		prefs:  prefs,
		locale: prefs.Locale(),
		logger: calculation.NopLogger{},
	}

	if tag, _ := cmd.Flags().GetString("locale"); tag != "" {
		loc, ok := domain.LookupLocale(tag)
		if !ok {
			return nil, fmt.Errorf("unsupported locale %q (want one of %s)", tag, strings.Join(domain.LocaleTags(), ", "))
		}
		rc.locale = loc
		rc.localeSet = true
	}

	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		rc.logger = newCLILogger(cmd.ErrOrStderr())
	}
	return rc, nil
}

// localeFor resolves the display locale for a scenario file: --locale, then
// the file's own locale, then preferences
func (rc *runContext) localeFor(fileLocale string) domain.Locale {
	if rc.localeSet || fileLocale == "" {
		return rc.locale
	}
	if loc, ok := domain.LookupLocale(fileLocale); ok {
		return loc
	}
	return rc.locale
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// addInputFlags registers the calculator inputs. They are strings so they go
// through the same lenient parsing as the interactive form.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("principal", "", "Initial amount (default 1000)")
	cmd.Flags().String("monthly", "", "Monthly contribution (default 0)")
	cmd.Flags().String("rate", "", "Nominal interest rate in percent (default 5)")
	cmd.Flags().String("rate-basis", "", "Rate basis: annual or monthly (default annual)")
	cmd.Flags().String("duration", "", "Duration (default 120)")
	cmd.Flags().String("unit", "", "Duration unit: months or years (default months)")
}

// inputFromFlags overlays the changed input flags on base
func inputFromFlags(cmd *cobra.Command, base domain.CalculationInput) (domain.CalculationInput, error) {
	text := config.TextInputFrom(base)
	flags := cmd.Flags()

	if flags.Changed("principal") {
		text.Principal, _ = flags.GetString("principal")
	}
	if flags.Changed("monthly") {
		text.MonthlyContribution, _ = flags.GetString("monthly")
	}
	if flags.Changed("rate") {
		text.Rate, _ = flags.GetString("rate")
	}
	if flags.Changed("duration") {
		text.Duration, _ = flags.GetString("duration")
	}
	if flags.Changed("rate-basis") {
		s, _ := flags.GetString("rate-basis")
		b, err := domain.ParseRateBasis(s)
		if err != nil {
			return domain.CalculationInput{}, err
		}
		text.RateBasis = b
	}
	if flags.Changed("unit") {
		s, _ := flags.GetString("unit")
		u, err := domain.ParseDurationUnit(s)
		if err != nil {
			return domain.CalculationInput{}, err
		}
		text.DurationUnit = u
	}

	in := text.Input()
	if err := config.CheckDuration(in.Duration, in.DurationUnit); err != nil {
		return domain.CalculationInput{}, err
	}
	if err := config.CheckResult(in); err != nil {
		return domain.CalculationInput{}, err
	}
	return in, nil
}

// inputChanged reports whether any input flag was given
func inputChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"principal", "monthly", "rate", "rate-basis", "duration", "unit"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
