package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/rgehrsitz/juros/internal/domain"
)

// TextInput is the raw state of the calculator form. Numeric fields hold
// whatever the user has typed so far.
type TextInput struct {
	Principal           string
	MonthlyContribution string
	Rate                string
	Duration            string
	RateBasis           domain.RateBasis
	DurationUnit        domain.DurationUnit
}

// TextInputFrom renders a calculation input back into form text
func TextInputFrom(in domain.CalculationInput) TextInput {
	return TextInput{
		Principal:           strconv.FormatFloat(in.Principal, 'f', -1, 64),
		MonthlyContribution: strconv.FormatFloat(in.MonthlyContribution, 'f', -1, 64),
		Rate:                strconv.FormatFloat(in.NominalRate, 'f', -1, 64),
		Duration:            strconv.Itoa(in.Duration),
		RateBasis:           in.RateBasis.Normalize(),
		DurationUnit:        in.DurationUnit.Normalize(),
	}
}

// Input normalizes the form text into a calculation input. It never fails:
// anything that does not start with a number becomes 0.
func (t TextInput) Input() domain.CalculationInput {
	return domain.CalculationInput{
		Principal:           LenientFloat(t.Principal),
		MonthlyContribution: LenientFloat(t.MonthlyContribution),
		NominalRate:         LenientFloat(t.Rate),
		RateBasis:           t.RateBasis.Normalize(),
		Duration:            LenientInt(t.Duration),
		DurationUnit:        t.DurationUnit.Normalize(),
	}
}

// LenientFloat parses the longest decimal prefix of s ("12.5abc" -> 12.5).
// Empty, non-numeric and non-finite text yields 0.
func LenientFloat(s string) float64 {
	prefix := floatPrefix(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// LenientInt parses the longest integer prefix of s ("12.9" -> 12).
// Empty, non-numeric and out of range text yields 0.
func LenientInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

// floatPrefix returns the longest prefix of s of the form
// [+-]digits[.digits][(e|E)[+-]digits], or "" when s has none.
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	mantissaDigits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		mantissaDigits += j - i - 1
		if mantissaDigits > 0 {
			i = j
		}
	}
	if mantissaDigits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
