// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders markdown content with glamour.

package main

import (
	"fmt"

	"github.com/harper/notepad/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id-prefix>",
	Short: "Show a note",
	Long:  `Display a note's full content with rendered markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		note, err := store.State().FindByPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatNoteHeader(note))

		content := note.Content + "\n"
		if cfg.Markdown && !raw {
			content, _ = ui.FormatNoteContent(note.Content, cfg.WordWrap)
		}
		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "print content without markdown rendering")
	rootCmd.AddCommand(showCmd)
}
