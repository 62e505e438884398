// ABOUTME: Key bindings for the list and editor panes.
// ABOUTME: Bindings double as the help line shown under each pane.

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Open   key.Binding
	Delete key.Binding
	Search key.Binding
	Quit   key.Binding

	Back        key.Binding
	DeleteOpen  key.Binding
	SwitchFocus key.Binding
	Bold        key.Binding
	Italic      key.Binding
	Reset       key.Binding
	Bigger      key.Binding
	Smaller     key.Binding
	Save        key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Cut         key.Binding
	Copy        key.Binding
	Paste       key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Search: key.NewBinding(key.WithKeys("/")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		DeleteOpen:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "title/body")),
		Bold:        key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "italic")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "plain")),
		Bigger:      key.NewBinding(key.WithKeys("ctrl+up", "alt+="), key.WithHelp("alt+=", "bigger")),
		Smaller:     key.NewBinding(key.WithKeys("ctrl+down", "alt+-"), key.WithHelp("alt+-", "smaller")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s")),
		Undo:        key.NewBinding(key.WithKeys("ctrl+z")),
		Redo:        key.NewBinding(key.WithKeys("ctrl+y")),
		Cut:         key.NewBinding(key.WithKeys("alt+x")),
		Copy:        key.NewBinding(key.WithKeys("alt+c")),
		Paste:       key.NewBinding(key.WithKeys("alt+v")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.New, k.Open, k.Delete, k.Quit}
}

func (k keyMap) editorHelp() []key.Binding {
	return []key.Binding{k.Back, k.SwitchFocus, k.Bold, k.Italic, k.Reset, k.Bigger, k.Smaller, k.DeleteOpen}
}
