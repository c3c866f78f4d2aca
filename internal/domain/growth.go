package domain

import (
	"fmt"
	"math"
	"strings"
)

// RateBasis selects how the nominal rate is interpreted
type RateBasis string

const (
	RateAnnual  RateBasis = "annual"
	RateMonthly RateBasis = "monthly"
)

// ParseRateBasis accepts the canonical names plus a few aliases ("anual", "mensal", "year", "month")
func ParseRateBasis(s string) (RateBasis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "annual", "anual", "year", "yearly", "a":
		return RateAnnual, nil
	case "monthly", "mensal", "month", "m":
		return RateMonthly, nil
	default:
		return "", fmt.Errorf("unknown rate basis %q (want annual or monthly)", s)
	}
}

// Normalize maps the zero value to the default basis
func (b RateBasis) Normalize() RateBasis {
	if b == "" {
		return RateAnnual
	}
	return b
}

// Valid reports whether b is one of the known bases (the zero value counts as annual)
func (b RateBasis) Valid() bool {
	switch b.Normalize() {
	case RateAnnual, RateMonthly:
		return true
	}
	return false
}

// Toggle returns the other basis
func (b RateBasis) Toggle() RateBasis {
	if b.Normalize() == RateAnnual {
		return RateMonthly
	}
	return RateAnnual
}

func (b RateBasis) String() string { return string(b.Normalize()) }

// DurationUnit selects how the duration is counted
type DurationUnit string

const (
	DurationMonths DurationUnit = "months"
	DurationYears  DurationUnit = "years"
)

// ParseDurationUnit accepts the canonical names plus aliases ("meses", "anos", "m", "y")
func ParseDurationUnit(s string) (DurationUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "months", "month", "meses", "mes", "m":
		return DurationMonths, nil
	case "years", "year", "anos", "ano", "y":
		return DurationYears, nil
	default:
		return "", fmt.Errorf("unknown duration unit %q (want months or years)", s)
	}
}

// Normalize maps the zero value to the default unit
func (u DurationUnit) Normalize() DurationUnit {
	if u == "" {
		return DurationMonths
	}
	return u
}

// Valid reports whether u is one of the known units (the zero value counts as months)
func (u DurationUnit) Valid() bool {
	switch u.Normalize() {
	case DurationMonths, DurationYears:
		return true
	}
	return false
}

// Toggle returns the other unit
func (u DurationUnit) Toggle() DurationUnit {
	if u.Normalize() == DurationMonths {
		return DurationYears
	}
	return DurationMonths
}

func (u DurationUnit) String() string { return string(u.Normalize()) }

// CalculationInput is an immutable snapshot of the calculator inputs
type CalculationInput struct {
	Principal           float64      `yaml:"principal" json:"principal"`
	MonthlyContribution float64      `yaml:"monthly_contribution" json:"monthlyContribution"`
	NominalRate         float64      `yaml:"rate" json:"nominalRate"` // percent units, e.g. 5 for 5%
	RateBasis           RateBasis    `yaml:"rate_basis" json:"rateBasis"`
	Duration            int          `yaml:"duration" json:"duration"`
	DurationUnit        DurationUnit `yaml:"duration_unit" json:"durationUnit"`
}

// DefaultInput returns the values the calculator form starts with
func DefaultInput() CalculationInput {
	return CalculationInput{
		Principal:           1000,
		MonthlyContribution: 0,
		NominalRate:         5,
		RateBasis:           RateAnnual,
		Duration:            120,
		DurationUnit:        DurationMonths,
	}
}

// CalculationResult holds the derived outputs of a single calculation
type CalculationResult struct {
	FinalValue       float64 `yaml:"final_value" json:"finalValue"`
	TotalContributed float64 `yaml:"total_contributed" json:"totalContributed"`
	TotalInterest    float64 `yaml:"total_interest" json:"totalInterest"`

	TotalMonths int     `yaml:"total_months" json:"totalMonths"`
	MonthlyRate float64 `yaml:"monthly_rate" json:"monthlyRate"`
}

// Finite reports whether every amount of the result is a real number. Annual
// rates below -100% yield NaN and large rate and duration pairs overflow.
func (r CalculationResult) Finite() bool {
	for _, v := range []float64{r.FinalValue, r.TotalContributed, r.TotalInterest, r.MonthlyRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MonthlyBalance is one row of the month-by-month ledger
type MonthlyBalance struct {
	Month             int     `yaml:"month" json:"month"`
	Opening           float64 `yaml:"opening" json:"opening"`
	Interest          float64 `yaml:"interest" json:"interest"`
	Contribution      float64 `yaml:"contribution" json:"contribution"`
	Closing           float64 `yaml:"closing" json:"closing"`
	ContributedToDate float64 `yaml:"contributed_to_date" json:"contributedToDate"`
}
