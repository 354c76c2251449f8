package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/nettogo/internal/scenario"
	"github.com/rgehrsitz/nettogo/internal/tui"
	"github.com/spf13/cobra"
)

func tuiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [input-file]",
		Short: "Interactive calculator",
		Long: `Open the interactive calculator. Scenarios from an optional input file are
loaded into the table; more can be added with the form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := opts.parser()
			if err != nil {
				return err
			}

			var initial []scenario.Draft
			if len(args) == 1 {
				configData, err := parser.LoadFromFile(args[0])
				if err != nil {
					return err
				}
				initial = configData.Scenarios
			}

			// the TUI owns the terminal, keep engine logs out of it
			engine := opts.engine(parser)
			if !opts.settings.Debug {
				engine.SetLogger(nil)
			}

			model, err := tui.NewModel(engine, initial)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}
