package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/config"
	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the final value of one input or a scenario file",
		Long: `Calculate the final value, total contributed and total interest.

Examples:
  juros calculate --principal 1000 --rate 5 --duration 10 --unit years
  juros calculate --monthly 100 --rate 1 --rate-basis monthly --duration 24
  juros calculate --file scenarios.yaml --format csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			withSchedule, _ := cmd.Flags().GetBool("schedule")
			return runCalculate(cmd, withSchedule)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("file", "", "Scenario file (YAML); input flags are ignored when set")
	cmd.Flags().StringP("format", "f", "", "Output format ("+strings.Join(output.AvailableFormatAliases(), ", ")+")")
	cmd.Flags().Bool("schedule", false, "Include the month-by-month ledger")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, true)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("file", "", "Scenario file (YAML); input flags are ignored when set")
	cmd.Flags().StringP("format", "f", "", "Output format ("+strings.Join(output.AvailableFormatAliases(), ", ")+")")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func runCalculate(cmd *cobra.Command, withSchedule bool) error {
	rc, err := loadRunContext(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadScenarios(cmd, rc)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	if formatName == "" {
		formatName = rc.prefs.Format("console")
	}
	formatter := output.GetFormatterByName(formatName, rc.localeFor(cfg.Locale))
	if formatter == nil {
		return fmt.Errorf("unknown format %q (want one of %s)", formatName, strings.Join(output.AvailableFormatAliases(), ", "))
	}

	engine := calculation.NewEngine()
	engine.SetLogger(rc.logger)
	engine.IncludeSchedule = withSchedule || formatter.Name() == "schedule-csv"

	results, err := engine.RunScenarios(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		filename, err := output.WriteFormatted(formatter, results, extensionFor(formatter))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", formatter.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadScenarios reads --file, or builds a single scenario from the input flags
// layered over the preferences
func loadScenarios(cmd *cobra.Command, rc *runContext) (*domain.Configuration, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		if inputChanged(cmd) {
			rc.logger.Warnf("input flags are ignored when --file is set")
		}
		return config.NewInputParser().LoadFromFile(file)
	}

	in, err := inputFromFlags(cmd, rc.prefs.Input())
	if err != nil {
		return nil, err
	}
	return &domain.Configuration{
		Locale:    rc.locale.Tag,
		Scenarios: []domain.Scenario{{Name: "Calculation", CalculationInput: in}},
	}, nil
}

func extensionFor(f output.Formatter) string {
	switch f.Name() {
	case "console":
		return "txt"
	case "schedule-csv":
		return "csv"
	default:
		return f.Name()
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid (%d scenarios)\n", args[0], len(cfg.Scenarios))
			return nil
		},
	}
}
