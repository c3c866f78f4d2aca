package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosYAML = `
locale: pt-BR
scenarios:
  - name: Base
    principal: 1000
    rate: 5
    rate_basis: annual
    duration: 120
    duration_unit: months
  - name: Monthly 200
    description: add 200 every month
    principal: 1000
    monthly_contribution: 200
    rate: 5
    rate_basis: annual
    duration: 10
    duration_unit: years
`

// execute runs the CLI with an isolated preferences path unless args set one
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	hasConfig := false
	for _, a := range args {
		if a == "--config" || strings.HasPrefix(a, "--config=") {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append(args, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	}

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "juros", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"calculate", "schedule", "compare", "solve", "validate", "tui", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_Execute(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "calculate")
}

func TestCalculateCommand_Defaults(t *testing.T) {
	out, _, err := execute(t, "calculate")
	require.NoError(t, err)

	assert.Contains(t, out, "COMPOUND GROWTH SUMMARY")
	assert.Contains(t, out, "Final value:          R$ 1.628,89")
	assert.Contains(t, out, "Total contributed:    R$ 1.000,00")
	assert.Contains(t, out, "Total interest:       R$ 628,89")
}

func TestCalculateCommand_Flags(t *testing.T) {
	out, _, err := execute(t, "calculate",
		"--principal", "0", "--monthly", "100", "--rate", "12", "--rate-basis", "mensal",
		"--duration", "10", "--locale", "en-US")
	require.NoError(t, err)

	assert.Contains(t, out, "Final value:          $1,754.87")
	assert.Contains(t, out, "Total contributed:    $1,000.00")
}

func TestCalculateCommand_LenientText(t *testing.T) {
	out, _, err := execute(t, "calculate", "--principal", "abc", "--duration", "12.9")
	require.NoError(t, err)

	assert.Contains(t, out, "Principal:            R$ 0,00")
	assert.Contains(t, out, "(12 months)")
}

func TestCalculateCommand_Years(t *testing.T) {
	months, _, err := execute(t, "calculate", "--duration", "120", "--format", "json")
	require.NoError(t, err)
	years, _, err := execute(t, "calculate", "--duration", "10", "--unit", "anos", "--format", "json")
	require.NoError(t, err)

	final := func(s string) float64 {
		var doc struct {
			Scenarios []struct {
				Result struct {
					FinalValue float64 `json:"finalValue"`
				} `json:"result"`
			} `json:"scenarios"`
		}
		require.NoError(t, json.Unmarshal([]byte(s), &doc))
		require.Len(t, doc.Scenarios, 1)
		return doc.Scenarios[0].Result.FinalValue
	}
	assert.Equal(t, final(months), final(years))
	assert.InDelta(t, 1628.89, final(months), 0.005)
}

func TestCalculateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Unknown rate basis", args: []string{"calculate", "--rate-basis", "weekly"}},
		{name: "Unknown unit", args: []string{"calculate", "--unit", "days"}},
		{name: "Too long", args: []string{"calculate", "--duration", "101", "--unit", "years"}},
		{name: "Unknown format", args: []string{"calculate", "--format", "html"}},
		{name: "Unknown locale", args: []string{"calculate", "--locale", "fr-FR"}},
		{name: "Missing file", args: []string{"calculate", "--file", "does-not-exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCalculateCommand_NonFiniteResult(t *testing.T) {
	_, _, err := execute(t, "calculate", "--rate", "-200")
	require.ErrorIs(t, err, calculation.ErrNonFinite)

	_, _, err = execute(t, "calculate", "--rate", "900", "--rate-basis", "monthly", "--duration", "1200")
	require.ErrorIs(t, err, calculation.ErrNonFinite)

	out, _, err := execute(t, "calculate", "--rate", "-200", "--rate-basis", "monthly", "--duration", "2")
	require.NoError(t, err, "a monthly rate below -100% stays finite")
	assert.Contains(t, out, "Final value:          R$ 1.000,00")
}

func TestCompareCommand_OverflowingFile(t *testing.T) {
	file := writeFile(t, "overflow.yaml", scenariosYAML+`  - name: Overflow
    principal: 1000
    rate: 900
    rate_basis: monthly
    duration: 1200
`)

	_, _, err := execute(t, "compare", file)
	require.ErrorIs(t, err, calculation.ErrNonFinite)

	_, _, err = execute(t, "validate", file)
	assert.ErrorIs(t, err, calculation.ErrNonFinite)
}

func TestCalculateCommand_File(t *testing.T) {
	file := writeFile(t, "scenarios.yaml", scenariosYAML)

	out, _, err := execute(t, "calculate", "--file", file, "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Base")
	assert.Contains(t, lines[2], "Monthly 200")
}

func TestCalculateCommand_Preferences(t *testing.T) {
	prefs := writeFile(t, "config.toml", `
[defaults]
principal = 2000

[display]
locale = "en-US"
`)

	out, _, err := execute(t, "calculate", "--config", prefs)
	require.NoError(t, err)
	assert.Contains(t, out, "Final value:          $3,257.79")

	out, _, err = execute(t, "calculate", "--config", prefs, "--principal", "1000", "--locale", "pt-BR")
	require.NoError(t, err)
	assert.Contains(t, out, "R$ 1.628,89", "flags override preferences")
}

func TestCalculateCommand_InvalidPreferences(t *testing.T) {
	prefs := writeFile(t, "config.toml", "[display]\nlocale = \"xx\"\n")
	_, _, err := execute(t, "calculate", "--config", prefs)
	assert.Error(t, err)

	prefs = writeFile(t, "format.toml", "[display]\nformat = \"html\"\n")
	_, _, err = execute(t, "calculate", "--config", prefs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), prefs)
}

func TestCalculateCommand_Debug(t *testing.T) {
	_, stderr, err := execute(t, "calculate", "--debug")
	require.NoError(t, err)

	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "component=juros")
	assert.Contains(t, stderr, "calculated 1 scenarios")
}

func TestScheduleCommand(t *testing.T) {
	out, _, err := execute(t, "schedule", "--duration", "3", "--format", "schedule-csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,Month"))
	assert.True(t, strings.HasPrefix(lines[3], "Calculation,3,"))
}

func TestCompareCommand(t *testing.T) {
	file := writeFile(t, "scenarios.yaml", scenariosYAML)

	out, _, err := execute(t, "compare", file, "--base", "Base")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPOUND GROWTH SCENARIO COMPARISON")
	assert.Contains(t, out, "Monthly 200")
	assert.Contains(t, out, "RECOMMENDATIONS")

	out, _, err = execute(t, "compare", file, "--format", "json")
	require.NoError(t, err, "base defaults to the first scenario")
	assert.Contains(t, out, `"baseScenarioName"`)

	_, _, err = execute(t, "compare", file, "--base", "Nope")
	assert.Error(t, err)

	_, _, err = execute(t, "compare", file, "--format", "xml")
	assert.Error(t, err)
}

func TestSolveCommand(t *testing.T) {
	out, _, err := execute(t, "solve", "--target", "principal", "--value", "1628.89")
	require.NoError(t, err)
	assert.Contains(t, out, "GOAL SEEK RESULTS")
	assert.Contains(t, out, "Required principal:")

	out, _, err = execute(t, "solve", "--target", "duration", "--value", "2000", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Success bool    `json:"success"`
		Value   float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.Success)
	assert.Equal(t, 171.0, doc.Value)
}

func TestSolveCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Missing target", args: []string{"solve", "--value", "10"}},
		{name: "Unknown target", args: []string{"solve", "--target", "salary", "--value", "10"}},
		{name: "Bad value", args: []string{"solve", "--target", "rate", "--value", "lots"}},
		{name: "Bad bound", args: []string{"solve", "--target", "rate", "--value", "10", "--max", "x"}},
		{name: "Bound above month limit", args: []string{"solve", "--target", "duration", "--value", "5000", "--max", "1e10"}},
		{name: "Unreachable", args: []string{"solve", "--target", "duration", "--value", "5000", "--rate", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestValidateCommand(t *testing.T) {
	file := writeFile(t, "scenarios.yaml", scenariosYAML)
	out, _, err := execute(t, "validate", file)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (2 scenarios)")

	bad := writeFile(t, "bad.yaml", "scenarios:\n  - name: A\n    duration: -1\n")
	_, _, err = execute(t, "validate", bad)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "juros dev"))
}

func TestCLILogger(t *testing.T) {
	var buf bytes.Buffer
	l := newCLILogger(&buf)

	l.Infof("ran %d scenarios", 3)
	l.Warnf("careful")
	l.Errorf("bad %s", "things")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="ran 3 scenarios"`)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestParseNameList(t *testing.T) {
	assert.Equal(t, []string{"A", "B c"}, parseNameList(" A, ,B c,"))
	assert.Empty(t, parseNameList(""))
}
