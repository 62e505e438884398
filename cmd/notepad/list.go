// ABOUTME: List command for displaying notes.
// ABOUTME: Prints the store snapshot most recently modified first.

package main

import (
	"fmt"

	"github.com/harper/notepad/internal/models"
	"github.com/harper/notepad/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List all notes, most recently modified first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("limit must not be negative, got %d", limit)
		}

		state := store.State()
		if limit > 0 && limit < len(state.Notes) {
			state = models.State{Notes: state.Notes[:limit], Editor: state.Editor}
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.FormatNoteList(state))
		return nil
	},
}

func init() {
	listCmd.Flags().IntP("limit", "n", 0, "number of results (0 for all)")
	rootCmd.AddCommand(listCmd)
}
