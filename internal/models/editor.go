// ABOUTME: Editor state for the note currently being edited.
// ABOUTME: Holds uncommitted title/content buffers and text style.

package models

import "github.com/google/uuid"

const (
	DefaultFontSize = 16
	MinFontSize     = 12
	MaxFontSize     = 30
	FontSizeStep    = 2
)

// EditorState is the transient, per-selection editing state. Title and
// Content diverge from the selected note until the store commits them.
type EditorState struct {
	SelectedID uuid.UUID `json:"selected_id" yaml:"selected_id"`
	Title      string    `json:"title" yaml:"title"`
	Content    string    `json:"content" yaml:"content"`
	FontSize   int       `json:"font_size" yaml:"font_size"`
	Bold       bool      `json:"bold" yaml:"bold"`
	Italic     bool      `json:"italic" yaml:"italic"`
}

func NewEditorState() EditorState {
	return EditorState{FontSize: DefaultFontSize}
}

func (e EditorState) HasSelection() bool {
	return e.SelectedID != uuid.Nil
}

// DefaultStyle restores the default font size and clears bold and italic.
func (e EditorState) DefaultStyle() EditorState {
	e.FontSize = DefaultFontSize
	e.Bold = false
	e.Italic = false
	return e
}

// ClampFontSize pins size to [MinFontSize, MaxFontSize].
func ClampFontSize(size int) int {
	return min(max(size, MinFontSize), MaxFontSize)
}
