package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// cliLogger implements calculation.Logger on top of log/slog
type cliLogger struct {
	l *slog.Logger
}

func newCLILogger(w io.Writer) cliLogger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return cliLogger{l: slog.New(h).With("component", "juros")}
}

func (c cliLogger) Debugf(format string, args ...any) { c.l.Debug(fmt.Sprintf(format, args...)) }
func (c cliLogger) Infof(format string, args ...any)  { c.l.Info(fmt.Sprintf(format, args...)) }
func (c cliLogger) Warnf(format string, args ...any)  { c.l.Warn(fmt.Sprintf(format, args...)) }
func (c cliLogger) Errorf(format string, args ...any) { c.l.Error(fmt.Sprintf(format, args...)) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "juros %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				if info := buildInfo(); info != "" {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Include Go build information")
	return cmd
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "juros",
		Short: "Compound growth calculator CLI",
		Long: `Projects an initial amount plus fixed monthly contributions under compound
interest. Rates may be annual (converted to the equivalent monthly rate) or
monthly; durations may be given in months or years.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Preferences file (default $XDG_CONFIG_HOME/juros/config.toml)")
	root.PersistentFlags().String("locale", "", "Display locale (pt-BR, en-US)")
	root.PersistentFlags().Bool("debug", false, "Log calculation details to stderr")

	root.AddCommand(calculateCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(solveCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(tuiCmd())
	root.AddCommand(versionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
