package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/juros/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Principal", "MonthlyContribution", "Rate", "RateBasis", "Duration", "DurationUnit", "TotalMonths", "MonthlyRate", "FinalValue", "TotalContributed", "TotalInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if results != nil {
		for _, sc := range results.Scenarios {
			in, res := sc.Input, sc.Result
			row := []string{
				sc.Name,
				cents(in.Principal),
				cents(in.MonthlyContribution),
				strconv.FormatFloat(in.NominalRate, 'f', -1, 64),
				in.RateBasis.String(),
				strconv.Itoa(in.Duration),
				in.DurationUnit.String(),
				strconv.Itoa(res.TotalMonths),
				Fixed(res.MonthlyRate, 8),
				cents(res.FinalValue),
				cents(res.TotalContributed),
				cents(res.TotalInterest),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ScheduleCSVFormatter writes the monthly ledger of every scenario
type ScheduleCSVFormatter struct{}

func (s ScheduleCSVFormatter) Name() string { return "schedule-csv" }

func (s ScheduleCSVFormatter) Format(results *domain.ScenarioSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Month", "Opening", "Interest", "Contribution", "Closing", "ContributedToDate"}); err != nil {
		return nil, err
	}
	if results != nil {
		for _, sc := range results.Scenarios {
			for _, r := range sc.Schedule {
				row := []string{
					sc.Name,
					strconv.Itoa(r.Month),
					cents(r.Opening),
					cents(r.Interest),
					cents(r.Contribution),
					cents(r.Closing),
					cents(r.ContributedToDate),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func cents(v float64) string { return Fixed(v, 2) }
