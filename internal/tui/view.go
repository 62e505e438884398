// ABOUTME: Rendering for the list and editor panes.
// ABOUTME: Applies editor text style through lipgloss.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/notepad/internal/models"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dateStyle     = lipgloss.NewStyle().Faint(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	editorBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// contentStyle maps the editor's text style onto terminal attributes. Font
// size has no terminal equivalent and is only shown in the status line.
func contentStyle(e models.EditorState) lipgloss.Style {
	return lipgloss.NewStyle().Bold(e.Bold).Italic(e.Italic)
}

func (m Model) View() string {
	if m.pane == paneEditor {
		return m.editorView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var sb strings.Builder
	state := m.snap.state

	sb.WriteString(headerStyle.Render("Notes"))
	sb.WriteString("\n")

	if len(state.Notes) == 0 {
		sb.WriteString(emptyStyle.Render("No notes yet. Press n to create one."))
		sb.WriteString("\n")
	}
	for i, n := range state.Notes {
		marker := "  "
		title := titleStyle.Render(listTitle(n))
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
			title = selectedStyle.Inherit(titleStyle).Render(listTitle(n))
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s\n", marker, title, dateStyle.Render(n.FormattedDate())))
	}

	sb.WriteString(helpStyle.Render(helpLine(m.keys.listHelp())))
	return sb.String()
}

func (m Model) editorView() string {
	var sb strings.Builder
	e := m.snap.state.Editor

	sb.WriteString(headerStyle.Render("Edit note"))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(styleStatus(e)))
	sb.WriteString("\n\n")

	body := lipgloss.JoinVertical(lipgloss.Left, m.title.View(), "", m.content.View())
	sb.WriteString(editorBorder.Render(body))
	sb.WriteString("\n")

	sb.WriteString(helpStyle.Render(helpLine(m.keys.editorHelp())))
	return sb.String()
}

func styleStatus(e models.EditorState) string {
	parts := []string{fmt.Sprintf("%dsp", e.FontSize)}
	if e.Bold {
		parts = append(parts, "bold")
	}
	if e.Italic {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, " · ")
}

func listTitle(n models.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return models.DefaultTitle
	}
	return n.Title
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
