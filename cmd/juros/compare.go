package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/compare"
	"github.com/rgehrsitz/juros/internal/config"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare scenarios of a file against a base scenario",
		Long: `Compare a base scenario against the other scenarios of a file.

Examples:
  juros compare scenarios.yaml --base Base
  juros compare scenarios.yaml --base Base --with "Aggressive,Monthly 200" --format csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			rc, err := loadRunContext(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			baseName, _ := cmd.Flags().GetString("base")
			if baseName == "" {
				baseName = cfg.Scenarios[0].Name
				rc.logger.Infof("no --base given, using first scenario %q", baseName)
			}
			withStr, _ := cmd.Flags().GetString("with")

			engine := calculation.NewEngine()
			engine.SetLogger(rc.logger)
			compareEngine := compare.NewCompareEngine(engine)

			compSet, err := compareEngine.CompareScenarios(commandContext(cmd), cfg, baseName, parseNameList(withStr))
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			compSet.ConfigPath = inputFile
			compSet.Locale = rc.localeFor(cfg.Locale)

			outputFormat, _ := cmd.Flags().GetString("format")
			compact, _ := cmd.Flags().GetBool("compact")
			out := cmd.OutOrStdout()

			switch strings.ToLower(outputFormat) {
			case "table", "console":
				tf := &compare.TableFormatter{}
				if compact {
					fmt.Fprint(out, tf.FormatCompact(compSet))
				} else {
					fmt.Fprint(out, tf.Format(compSet))
				}
			case "csv":
				csv, err := (&compare.CSVFormatter{}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprint(out, csv)
			case "json":
				js, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, js)
			default:
				return fmt.Errorf("unknown format %q (want table, csv or json)", outputFormat)
			}
			return nil
		},
	}
	cmd.Flags().String("base", "", "Base scenario name (default: first scenario in the file)")
	cmd.Flags().String("with", "", "Comma-separated scenario names to compare (default: all others)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().Bool("compact", false, "One line per scenario")
	return cmd
}

// parseNameList splits a comma-separated list, dropping blanks
func parseNameList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
