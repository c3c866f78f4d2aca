package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Rate",
		"Duration",
		"Final Value",
		"Total Contributed",
		"Total Interest",
		"Interest Share %",
		"Final Diff from Base",
		"Final % Change",
		"Interest Diff from Base",
		"Contributed Diff from Base",
		"Months Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.Rate,
		result.Duration,
		result.FinalValue.StringFixed(2),
		result.TotalContributed.StringFixed(2),
		result.TotalInterest.StringFixed(2),
		result.InterestShare.StringFixed(2),
		result.FinalDiffFromBase.StringFixed(2),
		result.FinalPctFromBase.StringFixed(2),
		result.InterestDiffFromBase.StringFixed(2),
		result.ContributedDiffFromBase.StringFixed(2),
		formatInt(result.MonthsDiffFromBase),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
