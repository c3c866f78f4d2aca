package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/juros/internal/goalseek"
)

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the input that reaches a target final value",
		Long: `Solve for one input so that the final value reaches --value. The other
inputs come from the input flags layered over the preferences.

Examples:
  juros solve --target monthly_contribution --value 100000 --rate 8 --duration 20 --unit years
  juros solve --target rate --value 2000 --principal 1000 --duration 120
  juros solve --target duration --value 1000000 --monthly 1500 --rate 10
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadRunContext(cmd)
			if err != nil {
				return err
			}

			targetStr, _ := cmd.Flags().GetString("target")
			target, err := goalseek.ParseTarget(targetStr)
			if err != nil {
				return err
			}

			valueStr, _ := cmd.Flags().GetString("value")
			value, err := parseNumber("value", valueStr)
			if err != nil {
				return err
			}

			base, err := inputFromFlags(cmd, rc.prefs.Input())
			if err != nil {
				return err
			}

			req := goalseek.Request{Base: base, Target: target, TargetValue: value}
			if req.Min, err = optionalNumber(cmd, "min"); err != nil {
				return err
			}
			if req.Max, err = optionalNumber(cmd, "max"); err != nil {
				return err
			}

			solver := goalseek.NewDefaultSolver()
			solver.SetLogger(rc.logger)
			result, err := solver.Solve(commandContext(cmd), req)
			if err != nil {
				return fmt.Errorf("goal seek failed: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			switch strings.ToLower(outputFormat) {
			case "table", "console":
				fmt.Fprint(cmd.OutOrStdout(), (&goalseek.TableFormatter{Locale: rc.locale}).Format(result))
			case "json":
				js, err := (&goalseek.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), js)
			default:
				return fmt.Errorf("unknown format %q (want console or json)", outputFormat)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("target", "", "Input to solve for: principal, monthly_contribution, rate or duration (required)")
	cmd.Flags().String("value", "", "Target final value (required)")
	cmd.Flags().String("min", "", "Lower search bound (amount, percent or months)")
	cmd.Flags().String("max", "", "Upper search bound (amount, percent or months)")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

// parseNumber is strict: a target value that is not a number is an error
func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("--%s must be a number, got %q", name, s)
	}
	return v, nil
}

func optionalNumber(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	s, _ := cmd.Flags().GetString(name)
	v, err := parseNumber(name, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
