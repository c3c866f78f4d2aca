package goalseek

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats goal seek results as a console table
type TableFormatter struct {
	Locale domain.Locale
}

// Format generates a formatted table for a goal seek result
func (tf *TableFormatter) Format(result *Result) string {
	loc := tf.locale()
	var sb strings.Builder

	sb.WriteString("GOAL SEEK RESULTS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Solving For:   %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Target Value:  %s\n", output.Money(loc, result.Request.TargetValue)))
	sb.WriteString(fmt.Sprintf("Status:        %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:    %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:   %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("SOLVED INPUT\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-22s %s\n", tf.label(result.Request.Target)+":", tf.FormatValue(result)))
	sb.WriteString("\n")

	in := result.Input
	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Principal:             %s\n", output.Money(loc, in.Principal)))
	sb.WriteString(fmt.Sprintf("Monthly contribution:  %s\n", output.Money(loc, in.MonthlyContribution)))
	sb.WriteString(fmt.Sprintf("Rate:                  %s %s\n", output.Percent(loc, in.NominalRate/100, 4), in.RateBasis))
	sb.WriteString(fmt.Sprintf("Duration:              %d %s\n", in.Duration, in.DurationUnit))
	sb.WriteString(fmt.Sprintf("Final value:           %s\n", output.Money(loc, result.Outcome.FinalValue)))
	sb.WriteString(fmt.Sprintf("Total contributed:     %s\n", output.Money(loc, result.Outcome.TotalContributed)))
	sb.WriteString(fmt.Sprintf("Total interest:        %s\n", output.Money(loc, result.Outcome.TotalInterest)))

	if result.Outcome.Finite() {
		diff := decimal.NewFromFloat(result.Outcome.FinalValue).Sub(decimal.NewFromFloat(result.Request.TargetValue)).Round(2)
		if !diff.IsZero() {
			sb.WriteString(fmt.Sprintf("Difference to target:  %s\n", output.Money(loc, diff.InexactFloat64())))
		}
	}

	return sb.String()
}

// FormatValue renders the solved value in the unit of its target
func (tf *TableFormatter) FormatValue(result *Result) string {
	loc := tf.locale()
	switch result.Request.Target {
	case TargetRate:
		return fmt.Sprintf("%s %s", output.Percent(loc, result.Value/100, 4), result.Input.RateBasis)
	case TargetDuration:
		return fmt.Sprintf("%d months", int(result.Value))
	default:
		return output.Money(loc, result.Value)
	}
}

func (tf *TableFormatter) label(t Target) string {
	switch t {
	case TargetPrincipal:
		return "Required principal"
	case TargetMonthlyContribution:
		return "Required contribution"
	case TargetRate:
		return "Required rate"
	case TargetDuration:
		return "Required duration"
	}
	return string(t)
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) locale() domain.Locale {
	if tf.Locale.Tag == "" {
		return domain.DefaultLocale
	}
	return tf.Locale
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	data, err := output.MarshalJSON(result, jf.Pretty)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
