// ABOUTME: TUI command running the interactive note editor.
// ABOUTME: Uses the alternate screen; logs only go to a configured file.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/notepad/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the note editor",
	Long:  `Open the interactive terminal editor. This is also what running notepad with no arguments does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	model := tui.New(store, logger.With().Str("component", "tui").Logger())

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
