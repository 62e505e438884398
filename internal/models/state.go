// ABOUTME: Application state snapshot shared with rendering layers.
// ABOUTME: Combines the ordered note list with the editor state.

package models

import (
	"strings"

	"github.com/google/uuid"
)

// State is an immutable snapshot. Notes are ordered by UpdatedAt, newest
// first. Holders must not modify the Notes slice.
type State struct {
	Notes  []Note      `json:"notes" yaml:"notes"`
	Editor EditorState `json:"editor" yaml:"editor"`
}

func (s State) Find(id uuid.UUID) (Note, bool) {
	i := s.Index(id)
	if i < 0 {
		return Note{}, false
	}
	return s.Notes[i], true
}

// Index returns the position of id in Notes, or -1.
func (s State) Index(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	for i, n := range s.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// CurrentNote returns the committed version of the selected note.
func (s State) CurrentNote() (Note, bool) {
	return s.Find(s.Editor.SelectedID)
}

// FindByPrefix resolves an id prefix (at least six characters) to a note.
func (s State) FindByPrefix(prefix string) (Note, error) {
	if len(prefix) < 6 {
		return Note{}, ErrPrefixTooShort
	}
	prefix = strings.ToLower(prefix)

	var matches []Note
	for _, n := range s.Notes {
		if strings.HasPrefix(n.ID.String(), prefix) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return Note{}, ErrNoteNotFound
	case 1:
		return matches[0], nil
	default:
		return Note{}, ErrAmbiguousPrefix
	}
}
