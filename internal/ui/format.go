// ABOUTME: Terminal UI formatting for notepad output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/notepad/internal/models"
)

var (
	faint   = color.New(color.Faint).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	italic  = color.New(color.Italic).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

// FormatNoteListItem renders one list row. The selected note gets a marker.
func FormatNoteListItem(note models.Note, selected bool) string {
	var sb strings.Builder

	marker := " "
	if selected {
		marker = magenta("▸")
	}
	sb.WriteString(fmt.Sprintf("%s %s  %s\n", marker, faint(note.ShortID()), bold(displayTitle(note.Title))))
	sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Updated:"), faint(note.FormattedDate())))

	return sb.String()
}

// FormatNoteList renders every note in snapshot order.
func FormatNoteList(state models.State) string {
	if len(state.Notes) == 0 {
		return "No notes yet.\n"
	}

	var sb strings.Builder
	for _, n := range state.Notes {
		sb.WriteString(FormatNoteListItem(n, n.ID == state.Editor.SelectedID))
	}
	return sb.String()
}

// FormatNoteContent renders markdown, falling back to the raw text.
func FormatNoteContent(content string, wordWrap int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatNoteHeader(note models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(displayTitle(note.Title))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt.Format(models.DateLayout))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(note.FormattedDate())))

	sb.WriteString(Separator())
	return sb.String()
}

// FormatEditorStatus summarizes the editor: selection, style and whether
// the buffers differ from the committed note.
func FormatEditorStatus(state models.State) string {
	e := state.Editor
	note, ok := state.CurrentNote()
	if !ok {
		return faint("No note selected") + "\n"
	}

	var style []string
	if e.Bold {
		style = append(style, bold("bold"))
	}
	if e.Italic {
		style = append(style, italic("italic"))
	}
	style = append(style, fmt.Sprintf("%dsp", e.FontSize))

	status := fmt.Sprintf("%s %s  %s %s",
		faint("Editing:"), cyan(note.ShortID()),
		faint("Style:"), strings.Join(style, ", "))
	if e.Title != note.Title || e.Content != note.Content {
		status += "  " + magenta("(unsaved)")
	}
	return status + "\n"
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return models.DefaultTitle
	}
	return title
}
