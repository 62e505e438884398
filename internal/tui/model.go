// ABOUTME: Bubbletea model rendering the note store as a list and editor.
// ABOUTME: Key presses invoke store transitions; views read the latest snapshot.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/harper/notepad/internal/models"
	"github.com/harper/notepad/internal/notepad"
	"github.com/rs/zerolog"
)

type pane int

const (
	paneList pane = iota
	paneEditor
)

// snapshot is shared between the model copies bubbletea passes around and
// the store subscription that refreshes it.
type snapshot struct {
	state models.State
}

type Model struct {
	store *notepad.Store
	snap  *snapshot
	log   zerolog.Logger
	keys  keyMap

	pane       pane
	cursor     int
	titleFocus bool

	title   textinput.Model
	content textarea.Model

	width  int
	height int
}

// New builds a model bound to store. The model subscribes for the lifetime
// of the store.
func New(store *notepad.Store, log zerolog.Logger) Model {
	snap := &snapshot{state: store.State()}
	store.Subscribe(func(st models.State) {
		snap.state = st
	})

	ti := textinput.New()
	ti.Placeholder = models.DefaultTitle
	ti.Prompt = ""
	ti.CharLimit = 0

	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0

	return Model{
		store:   store,
		snap:    snap,
		log:     log,
		keys:    defaultKeyMap(),
		title:   ti,
		content: ta,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State is the snapshot the model currently renders.
func (m Model) State() models.State {
	return m.snap.state
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.pane == paneEditor {
			return m.updateEditor(msg)
		}
		return m.updateList(msg)
	}

	if m.pane == paneEditor {
		return m.forwardToInputs(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := m.snap.state.Notes

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(notes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		m.store.AddNewNote()
		return m.openEditor()

	case key.Matches(msg, m.keys.Open):
		if len(notes) == 0 {
			return m, nil
		}
		m.store.SelectNote(notes[m.cursor].ID)
		return m.openEditor()

	case key.Matches(msg, m.keys.Delete):
		if len(notes) == 0 {
			return m, nil
		}
		m.store.DeleteNote(notes[m.cursor].ID)
		m.clampCursor()

	case key.Matches(msg, m.keys.Search):
		m.store.Search()
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		id := m.snap.state.Editor.SelectedID
		m.store.ClearSelectedNote()
		return m.closeEditor(id), nil

	case key.Matches(msg, m.keys.DeleteOpen):
		m.store.DeleteNote(m.snap.state.Editor.SelectedID)
		return m.closeEditor(uuid.Nil), nil

	case key.Matches(msg, m.keys.SwitchFocus):
		return m.setFocus(!m.titleFocus)

	case key.Matches(msg, m.keys.Bold):
		m.store.ToggleBold()
	case key.Matches(msg, m.keys.Italic):
		m.store.ToggleItalic()
	case key.Matches(msg, m.keys.Reset):
		m.store.ResetStyle()
	case key.Matches(msg, m.keys.Bigger):
		m.store.ChangeFontSize(true)
	case key.Matches(msg, m.keys.Smaller):
		m.store.ChangeFontSize(false)
	case key.Matches(msg, m.keys.Save):
		m.store.Save()
	case key.Matches(msg, m.keys.Undo):
		m.store.Undo()
	case key.Matches(msg, m.keys.Redo):
		m.store.Redo()
	case key.Matches(msg, m.keys.Cut):
		m.store.Cut()
	case key.Matches(msg, m.keys.Copy):
		m.store.Copy()
	case key.Matches(msg, m.keys.Paste):
		m.store.Paste()

	default:
		return m.forwardToInputs(msg)
	}

	m.applyStyle()
	return m, nil
}

// forwardToInputs lets the focused widget handle msg and mirrors any text
// change into the store's editor buffers.
func (m Model) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	editor := m.snap.state.Editor

	if m.titleFocus {
		m.title, cmd = m.title.Update(msg)
		if v := m.title.Value(); v != editor.Title {
			m.store.SetTitle(v)
		}
		return m, cmd
	}

	m.content, cmd = m.content.Update(msg)
	if v := m.content.Value(); v != editor.Content {
		m.store.SetContent(v)
	}
	return m, cmd
}

// openEditor loads the editor widgets from the store's buffers.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	editor := m.snap.state.Editor
	if !editor.HasSelection() {
		return m, nil
	}

	m.pane = paneEditor
	m.title.SetValue(editor.Title)
	m.content.SetValue(editor.Content)
	m.applyStyle()
	m.log.Debug().Stringer("note_id", editor.SelectedID).Msg("editor opened")

	return m.setFocus(editor.Title == "")
}

// closeEditor returns to the list with the cursor on id when it still exists.
func (m Model) closeEditor(id uuid.UUID) Model {
	m.pane = paneList
	m.title.Blur()
	m.content.Blur()

	m.cursor = 0
	for i, n := range m.snap.state.Notes {
		if n.ID == id {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
	return m
}

func (m Model) setFocus(title bool) (tea.Model, tea.Cmd) {
	m.titleFocus = title

	var cmd tea.Cmd
	if title {
		m.content.Blur()
		cmd = m.title.Focus()
	} else {
		m.title.Blur()
		cmd = m.content.Focus()
	}
	return m, cmd
}

func (m *Model) clampCursor() {
	n := len(m.snap.state.Notes)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) applyStyle() {
	style := contentStyle(m.snap.state.Editor)
	m.content.FocusedStyle.Text = style
	m.content.BlurredStyle.Text = style
	m.title.TextStyle = titleStyle
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	m.title.Width = w
	m.content.SetWidth(w)
	m.content.SetHeight(max(m.height-8, 3))
}
