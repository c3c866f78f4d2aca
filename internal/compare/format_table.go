package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder
	loc := compSet.Locale
	if loc.Symbol == "" {
		loc = domain.DefaultLocale
	}

	sb.WriteString("COMPOUND GROWTH SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 84) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 19

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Final Value",
		numWidth, "Contributed",
		numWidth, "Interest"))
	sb.WriteString(strings.Repeat("-", 84) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, loc, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], loc, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 84) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s (%s, %s):\n", alt.ScenarioName, alt.Rate, alt.Duration))
			if alt.Undefined || compSet.BaseResult.Undefined {
				sb.WriteString("  Final Value:      not comparable (result is not a finite number)\n")
				continue
			}
			sb.WriteString(fmt.Sprintf("  Final Value:      %s%s (%s%%)\n",
				tf.deltaSymbol(alt.FinalDiffFromBase),
				output.Money(loc, alt.FinalDiffFromBase.Abs().InexactFloat64()),
				alt.FinalPctFromBase.StringFixed(1)))
			if !alt.InterestDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Interest:         %s%s\n",
					tf.deltaSymbol(alt.InterestDiffFromBase),
					output.Money(loc, alt.InterestDiffFromBase.Abs().InexactFloat64())))
			}
			if !alt.ContributedDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Contributed:      %s%s\n",
					tf.deltaSymbol(alt.ContributedDiffFromBase),
					output.Money(loc, alt.ContributedDiffFromBase.Abs().InexactFloat64())))
			}
			if alt.MonthsDiffFromBase != 0 {
				sign := "+"
				if alt.MonthsDiffFromBase < 0 {
					sign = ""
				}
				sb.WriteString(fmt.Sprintf("  Duration:         %s%d months\n", sign, alt.MonthsDiffFromBase))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, loc domain.Locale, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	if result.Undefined && result.Result != nil {
		res := result.Result.Result
		return fmt.Sprintf("%-*s %*s %*s %*s\n",
			nameWidth, tf.truncate(name, nameWidth),
			numWidth, output.Money(loc, res.FinalValue),
			numWidth, output.Money(loc, res.TotalContributed),
			numWidth, output.Money(loc, res.TotalInterest))
	}

	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.Money(loc, result.FinalValue.InexactFloat64()),
		numWidth, output.Money(loc, result.TotalContributed.InexactFloat64()),
		numWidth, output.Money(loc, result.TotalInterest.InexactFloat64()))
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder
	loc := compSet.Locale
	if loc.Symbol == "" {
		loc = domain.DefaultLocale
	}

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.FinalDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.FinalDiffFromBase) + output.Money(loc, alt.FinalDiffFromBase.Abs().InexactFloat64())
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
