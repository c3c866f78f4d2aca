package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/juros/internal/domain"
)

// ConsoleFormatter renders a human readable summary, one block per scenario
type ConsoleFormatter struct {
	Locale domain.Locale
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioSet) ([]byte, error) {
	var buf bytes.Buffer
	loc := c.locale()

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, "COMPOUND GROWTH SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	if results == nil || len(results.Scenarios) == 0 {
		fmt.Fprintln(&buf, "No scenarios.")
		return buf.Bytes(), nil
	}

	for i, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		if sc.Description != "" {
			fmt.Fprintf(&buf, "%s\n", sc.Description)
		}
		fmt.Fprintln(&buf, strings.Repeat("-", 60))

		in, res := sc.Input, sc.Result
		fmt.Fprintf(&buf, "Principal:            %s\n", Money(loc, in.Principal))
		fmt.Fprintf(&buf, "Monthly contribution: %s\n", Money(loc, in.MonthlyContribution))
		fmt.Fprintf(&buf, "Rate:                 %s %s (%s per month)\n",
			Percent(loc, in.NominalRate/100, 2), in.RateBasis, Percent(loc, res.MonthlyRate, 4))
		fmt.Fprintf(&buf, "Duration:             %d %s (%d months)\n", in.Duration, in.DurationUnit, res.TotalMonths)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Final value:          %s\n", Money(loc, res.FinalValue))
		fmt.Fprintf(&buf, "Total contributed:    %s\n", Money(loc, res.TotalContributed))
		fmt.Fprintf(&buf, "Total interest:       %s\n", Money(loc, res.TotalInterest))

		if len(sc.Schedule) > 0 {
			fmt.Fprintln(&buf)
			writeSchedule(&buf, loc, sc.Schedule)
		}
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) locale() domain.Locale {
	if c.Locale.Symbol == "" {
		return domain.DefaultLocale
	}
	return c.Locale
}

func writeSchedule(buf *bytes.Buffer, loc domain.Locale, rows []domain.MonthlyBalance) {
	fmt.Fprintf(buf, "%6s %18s %16s %16s %18s\n", "Month", "Opening", "Interest", "Contribution", "Closing")
	for _, r := range rows {
		fmt.Fprintf(buf, "%6d %18s %16s %16s %18s\n",
			r.Month,
			Money(loc, r.Opening),
			Money(loc, r.Interest),
			Money(loc, r.Contribution),
			Money(loc, r.Closing))
	}
}
