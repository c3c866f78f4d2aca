package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestSet(withSchedule bool) *domain.ScenarioSet {
	engine := calculation.NewEngine()
	engine.IncludeSchedule = withSchedule

	saver := domain.CalculationInput{
		MonthlyContribution: 100,
		NominalRate:         12,
		RateBasis:           domain.RateMonthly,
		Duration:            10,
		DurationUnit:        domain.DurationMonths,
	}
	return &domain.ScenarioSet{
		Locale: "pt-BR",
		Scenarios: []domain.ScenarioResult{
			engine.Run(domain.Scenario{Name: "Base", CalculationInput: domain.DefaultInput()}),
			engine.Run(domain.Scenario{Name: "Saver", Description: "Deposits only", CalculationInput: saver}),
		},
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		locale   domain.Locale
		amount   float64
		expected string
	}{
		{"pt-BR grouping", domain.LocalePtBR, 1628.894627, "R$ 1.628,89"},
		{"pt-BR small", domain.LocalePtBR, 5, "R$ 5,00"},
		{"pt-BR millions", domain.LocalePtBR, 1234567.891, "R$ 1.234.567,89"},
		{"pt-BR negative", domain.LocalePtBR, -12, "-R$ 12,00"},
		{"pt-BR rounds half up", domain.LocalePtBR, 0.125, "R$ 0,13"},
		{"negative rounding to zero", domain.LocalePtBR, -0.001, "R$ 0,00"},
		{"en-US", domain.LocaleEnUS, 1628.894627, "$1,628.89"},
		{"en-US three digits", domain.LocaleEnUS, 999.999, "$1,000.00"},
		{"en-US negative", domain.LocaleEnUS, -628.89, "-$628.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Money(tt.locale, tt.amount))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5,00%", Percent(domain.LocalePtBR, 0.05, 2))
	assert.Equal(t, "0.4074%", Percent(domain.LocaleEnUS, 0.0040741237836483, 4))
}

func TestNonFiniteAmounts(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	assert.Equal(t, "R$ NaN", Money(domain.LocalePtBR, nan))
	assert.Equal(t, "R$ ∞", Money(domain.LocalePtBR, inf))
	assert.Equal(t, "-$∞", Money(domain.LocaleEnUS, -inf))
	assert.Equal(t, "NaN%", Percent(domain.LocalePtBR, nan, 2))
	assert.Equal(t, "-∞%", Percent(domain.LocalePtBR, -inf, 4))

	assert.Equal(t, "NaN", Fixed(nan, 2))
	assert.Equal(t, "+Inf", Fixed(inf, 2))
	assert.Equal(t, "1628.89", Fixed(1628.894, 2))
}

func TestFormatters_NonFiniteResult(t *testing.T) {
	set := &domain.ScenarioSet{Scenarios: []domain.ScenarioResult{{
		Name:   "Broken",
		Input:  domain.CalculationInput{NominalRate: -200, RateBasis: domain.RateAnnual, Duration: 2, DurationUnit: domain.DurationMonths},
		Result: domain.CalculationResult{FinalValue: math.NaN(), TotalContributed: 0, TotalInterest: math.NaN(), TotalMonths: 2, MonthlyRate: math.NaN()},
		Schedule: []domain.MonthlyBalance{
			{Month: 1, Opening: 0, Interest: math.NaN(), Closing: math.NaN()},
		},
	}}}

	console, err := ConsoleFormatter{Locale: domain.LocalePtBR}.Format(set)
	require.NoError(t, err)
	assert.Contains(t, string(console), "Final value:          R$ NaN")

	summary, err := CSVSummarizer{}.Format(set)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Broken,0.00,0.00,-200,annual,2,months,2,NaN,NaN,0.00,NaN")

	ledger, err := ScheduleCSVFormatter{}.Format(set)
	require.NoError(t, err)
	assert.Contains(t, string(ledger), "Broken,1,0.00,NaN")
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.ScenarioSet) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(buildTestSet(false))
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.ScenarioSet) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestSet(false), "txt")
	require.NoError(t, err)
	assert.Contains(t, filename, "juros_report_")
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(results *domain.ScenarioSet) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestSet(false), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormatAliases() {
		f := GetFormatterByName(name, domain.LocalePtBR)
		assert.NotNil(t, f, "alias %s", name)
	}
	assert.Equal(t, "schedule-csv", GetFormatterByName("ledger", domain.LocalePtBR).Name())
	assert.Nil(t, GetFormatterByName("html", domain.LocalePtBR))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{Locale: domain.LocalePtBR}.Format(buildTestSet(false))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "COMPOUND GROWTH SUMMARY")
	assert.Contains(t, content, "SCENARIO 1: Base")
	assert.Contains(t, content, "SCENARIO 2: Saver")
	assert.Contains(t, content, "Deposits only")
	assert.Contains(t, content, "Final value:          R$ 1.628,89")
	assert.Contains(t, content, "Total contributed:    R$ 1.000,00")
	assert.Contains(t, content, "Total interest:       R$ 628,89")
	assert.Contains(t, content, "120 months")
	assert.NotContains(t, content, "Opening")
}

func TestConsoleFormatter_Schedule(t *testing.T) {
	out, err := ConsoleFormatter{Locale: domain.LocaleEnUS}.Format(buildTestSet(true))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Opening")
	assert.Contains(t, string(out), "$1,628.89")
}

func TestConsoleFormatter_Empty(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(&domain.ScenarioSet{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "No scenarios.")
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestSet(false))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"Base", "1000.00", "0.00", "5", "annual", "120", "months", "120", "0.00407412", "1628.89", "1000.00", "628.89"}, records[1])
	assert.Equal(t, "Saver", records[2][0])
	assert.Equal(t, "1000.00", records[2][10])
}

func TestScheduleCSVFormatter(t *testing.T) {
	out, err := ScheduleCSVFormatter{}.Format(buildTestSet(true))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	// header + 120 rows for Base + 10 rows for Saver
	require.Len(t, records, 1+120+10)
	assert.Equal(t, []string{"Saver", "1", "0.00", "0.00", "100.00", "100.00", "100.00"}, records[121])
}

func TestStructuredFormatters(t *testing.T) {
	set := buildTestSet(false)

	data, err := JSONFormatter{Pretty: true}.Format(set)
	require.NoError(t, err)
	var decoded domain.ScenarioSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, set.Scenarios[0].Result, decoded.Scenarios[0].Result)

	compact, err := JSONFormatter{}.Format(set)
	require.NoError(t, err)
	assert.Less(t, len(compact), len(data))

	yml, err := YAMLFormatter{}.Format(set)
	require.NoError(t, err)
	var fromYAML domain.ScenarioSet
	require.NoError(t, yaml.Unmarshal(yml, &fromYAML))
	assert.Equal(t, "Saver", fromYAML.Scenarios[1].Name)
	assert.Equal(t, domain.RateMonthly, fromYAML.Scenarios[1].Input.RateBasis)
}
