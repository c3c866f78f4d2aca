package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/shopspring/decimal"
)

// Money formats amount in the locale's currency, rounded half away from zero
// to cents: 1628.894 -> "R$ 1.628,89" (pt-BR), "$1,628.89" (en-US).
// NaN and infinities print as "R$ NaN", "R$ ∞" and "-R$ ∞".
func Money(l domain.Locale, amount float64) string {
	if !finite(amount) {
		sign, word := nonFinite(amount)
		return sign + symbol(l) + word
	}
	d := decimal.NewFromFloat(amount).Round(2)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol(l))
	b.WriteString(group(intPart, l.Grouping))
	b.WriteString(l.Decimal)
	b.WriteString(frac)
	return b.String()
}

// Percent formats a fractional rate (0.05 -> "5,00%" in pt-BR) with the given precision
func Percent(l domain.Locale, rate float64, places int32) string {
	if !finite(rate) {
		sign, word := nonFinite(rate)
		return sign + word + "%"
	}
	s := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(places)
	return strings.Replace(s, ".", l.Decimal, 1) + "%"
}

// Fixed renders v with the given decimal places using '.' as separator, for
// machine readable output. Non-finite values print as NaN, +Inf and -Inf.
func Fixed(v float64, places int32) string {
	if !finite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func nonFinite(v float64) (sign, word string) {
	switch {
	case math.IsNaN(v):
		return "", "NaN"
	case v < 0:
		return "-", "∞"
	default:
		return "", "∞"
	}
}

func symbol(l domain.Locale) string {
	if l.SymbolSpace {
		return l.Symbol + " "
	}
	return l.Symbol
}

// group inserts sep every three digits from the right
func group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
