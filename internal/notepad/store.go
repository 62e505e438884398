// ABOUTME: Note store holding the app state and its transition functions.
// ABOUTME: Every transition publishes one new immutable snapshot to observers.

package notepad

import (
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harper/notepad/internal/models"
	"github.com/rs/zerolog"
)

// Observer receives every snapshot the store publishes.
type Observer func(models.State)

type subscription struct {
	id int
	fn Observer
}

// Store owns the note collection and the editor state. It is not safe for
// concurrent use; callers on multiple goroutines must serialize access.
//
// Transitions never fail. Unknown ids deselect (SelectNote) or do nothing
// (UpdateNote, DeleteNote), blank titles are replaced on commit and font
// sizes are clamped.
type Store struct {
	state     models.State
	observers []subscription
	nextSub   int

	now  func() time.Time
	log  zerolog.Logger
	seed func(now time.Time) []models.Note
}

// New creates a store seeded with sample notes unless an option says
// otherwise.
func New(opts ...Option) *Store {
	s := &Store{
		now:  time.Now,
		log:  zerolog.Nop(),
		seed: sampleNotes,
	}
	for _, opt := range opts {
		opt(s)
	}

	var notes []models.Note
	if s.seed != nil {
		notes = uniqueNotes(s.seed(s.now()))
	}
	sortByModified(notes)

	s.state = models.State{
		Notes:  notes,
		Editor: models.NewEditorState(),
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() models.State {
	return s.state
}

// Subscribe registers fn for all future snapshots and returns a function
// that removes it. The current snapshot is not replayed.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// AddNewNote creates an empty note at the front of the list and selects it.
func (s *Store) AddNewNote() uuid.UUID {
	note := models.NewNote("", "", s.now())

	notes := make([]models.Note, 0, len(s.state.Notes)+1)
	notes = append(notes, note)
	notes = append(notes, s.state.Notes...)

	editor := s.state.Editor.DefaultStyle()
	editor.SelectedID = note.ID
	editor.Title = note.Title
	editor.Content = note.Content

	s.publish("add", note.ID, models.State{Notes: notes, Editor: editor})
	return note.ID
}

// SelectNote loads the note into the editor and resets the style, even when
// it is already selected. An unknown id clears the selection instead.
func (s *Store) SelectNote(id uuid.UUID) {
	editor := s.state.Editor
	note, ok := s.state.Find(id)
	if !ok {
		editor.SelectedID = uuid.Nil
	} else {
		editor = editor.DefaultStyle()
		editor.SelectedID = note.ID
		editor.Title = note.Title
		editor.Content = note.Content
	}
	s.publish("select", id, models.State{Notes: s.state.Notes, Editor: editor})
}

// UpdateNote commits title and content to the note and moves it to its
// position by modification time. Editor buffers are left alone.
func (s *Store) UpdateNote(id uuid.UUID, title, content string) {
	notes := s.commit(s.state.Notes, id, title, content)
	s.publish("update", id, models.State{Notes: notes, Editor: s.state.Editor})
}

// DeleteNote removes the note, clearing the selection if it was selected.
func (s *Store) DeleteNote(id uuid.UUID) {
	notes := s.state.Notes
	if i := s.state.Index(id); i >= 0 {
		notes = slices.Delete(slices.Clone(notes), i, i+1)
	}

	editor := s.state.Editor
	if editor.HasSelection() && editor.SelectedID == id {
		editor.SelectedID = uuid.Nil
	}
	s.publish("delete", id, models.State{Notes: notes, Editor: editor})
}

// ClearSelectedNote commits the editor buffers to the selected note, then
// drops the selection. Both happen in a single snapshot. Edits made in the
// buffers are lost if the selection changes any other way.
func (s *Store) ClearSelectedNote() {
	notes := s.state.Notes
	editor := s.state.Editor
	id := editor.SelectedID
	if editor.HasSelection() {
		notes = s.commit(notes, id, editor.Title, editor.Content)
	}
	editor.SelectedID = uuid.Nil
	s.publish("clear", id, models.State{Notes: notes, Editor: editor})
}

// SetTitle replaces the editor's title buffer. Nothing is committed until
// ClearSelectedNote.
func (s *Store) SetTitle(text string) {
	s.edit("title", func(e *models.EditorState) { e.Title = text })
}

// SetContent replaces the editor's content buffer without committing it.
func (s *Store) SetContent(text string) {
	s.edit("content", func(e *models.EditorState) { e.Content = text })
}

// ToggleBold flips the editor's bold flag.
func (s *Store) ToggleBold() {
	s.edit("bold", func(e *models.EditorState) { e.Bold = !e.Bold })
}

// ToggleItalic flips the editor's italic flag.
func (s *Store) ToggleItalic() {
	s.edit("italic", func(e *models.EditorState) { e.Italic = !e.Italic })
}

// ChangeFontSize steps the font size by two points and clamps the result.
func (s *Store) ChangeFontSize(increase bool) {
	step := -models.FontSizeStep
	if increase {
		step = models.FontSizeStep
	}
	s.edit("font_size", func(e *models.EditorState) {
		e.FontSize = models.ClampFontSize(e.FontSize + step)
	})
}

// ResetStyle clears bold and italic. Font size is kept.
func (s *Store) ResetStyle() {
	s.edit("reset_style", func(e *models.EditorState) {
		e.Bold = false
		e.Italic = false
	})
}

// Save, Undo, Redo, Cut, Copy, Paste and Search are toolbar actions with no
// state semantics. They do not publish.

func (s *Store) Save()   {}
func (s *Store) Undo()   {}
func (s *Store) Redo()   {}
func (s *Store) Cut()    {}
func (s *Store) Copy()   {}
func (s *Store) Paste()  {}
func (s *Store) Search() {}

func (s *Store) edit(op string, fn func(*models.EditorState)) {
	editor := s.state.Editor
	fn(&editor)
	s.publish(op, uuid.Nil, models.State{Notes: s.state.Notes, Editor: editor})
}

// commit returns a copy of notes with id updated and re-sorted, or notes
// itself when id is unknown.
func (s *Store) commit(notes []models.Note, id uuid.UUID, title, content string) []models.Note {
	i := slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 || id == uuid.Nil {
		return notes
	}
	out := slices.Clone(notes)
	out[i] = out[i].Commit(title, content, s.now())
	sortByModified(out)
	return out
}

func (s *Store) publish(op string, id uuid.UUID, next models.State) {
	s.state = next

	ev := s.log.Debug().Str("op", op).Int("notes", len(next.Notes))
	if id != uuid.Nil {
		ev = ev.Stringer("note_id", id)
	}
	if next.Editor.HasSelection() {
		ev = ev.Stringer("selected", next.Editor.SelectedID)
	}
	ev.Msg("state transition")

	for _, sub := range slices.Clone(s.observers) {
		sub.fn(next)
	}
}

// sortByModified orders notes newest first, keeping the prior order of
// notes modified at the same instant.
func sortByModified(notes []models.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

// uniqueNotes drops repeated ids. Notes without an id get a fresh one, since
// uuid.Nil means no selection.
func uniqueNotes(notes []models.Note) []models.Note {
	seen := make(map[uuid.UUID]bool, len(notes))
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID == uuid.Nil {
			n.ID = uuid.New()
		}
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		out = append(out, n)
	}
	return out
}
