package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/juros/internal/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calculator",
		Long: `Open the interactive calculator. Fields start from the preferences file,
overridden by any input flags, and every keystroke recalculates the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadRunContext(cmd)
			if err != nil {
				return err
			}
			defaults, err := inputFromFlags(cmd, rc.prefs.Input())
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				tui.NewModel(defaults, rc.locale),
				tea.WithAltScreen(),
				tea.WithContext(commandContext(cmd)),
			)
			_, err = p.Run()
			return err
		},
	}
	addInputFlags(cmd)
	return cmd
}
