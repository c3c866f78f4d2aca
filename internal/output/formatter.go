package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/juros/internal/domain"
)

// Formatter renders a scenario set into bytes
type Formatter interface {
	Name() string
	Format(results *domain.ScenarioSet) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(results *domain.ScenarioSet) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(results *domain.ScenarioSet) ([]byte, error) {
	return f.F(results)
}

var formatterAliases = map[string]string{
	"console":      "console",
	"text":         "console",
	"table":        "console",
	"json":         "json",
	"csv":          "csv",
	"schedule-csv": "schedule-csv",
	"ledger":       "schedule-csv",
	"yaml":         "yaml",
	"yml":          "yaml",
}

// AvailableFormatAliases lists every accepted format name, sorted
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(formatterAliases))
	for k := range formatterAliases {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// GetFormatterByName returns a formatter for name using locale for money, or
// nil when the name is unknown
func GetFormatterByName(name string, locale domain.Locale) Formatter {
	switch formatterAliases[name] {
	case "console":
		return ConsoleFormatter{Locale: locale}
	case "json":
		return JSONFormatter{Pretty: true}
	case "csv":
		return CSVSummarizer{}
	case "schedule-csv":
		return ScheduleCSVFormatter{}
	case "yaml":
		return YAMLFormatter{}
	default:
		return nil
	}
}

// WriteFormatted renders results and writes them to a timestamped file in the
// working directory, returning the file name
func WriteFormatted(f Formatter, results *domain.ScenarioSet, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("juros_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}
