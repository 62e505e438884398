// ABOUTME: Tests for Note model constructor and methods.
// ABOUTME: Validates UUID generation, commits and date formatting.

package models

import (
	"testing"
	"time"
)

func TestNewNote(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	note := NewNote("Test Note", "This is test content", now)

	if note.ID.String() == "" {
		t.Error("expected UUID to be generated")
	}
	if note.Title != "Test Note" {
		t.Errorf("expected title %q, got %q", "Test Note", note.Title)
	}
	if note.Content != "This is test content" {
		t.Errorf("expected content %q, got %q", "This is test content", note.Content)
	}
	if !note.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, note.CreatedAt)
	}
	if !note.UpdatedAt.Equal(now) {
		t.Errorf("expected UpdatedAt %v, got %v", now, note.UpdatedAt)
	}
}

func TestNewNoteUniqueIDs(t *testing.T) {
	now := time.Now()
	a := NewNote("", "", now)
	b := NewNote("", "", now)

	if a.ID == b.ID {
		t.Error("expected distinct IDs")
	}
}

func TestNoteCommit(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	note := NewNote("Old", "old body", created)

	got := note.Commit("New", "new body", later)

	if got.ID != note.ID {
		t.Error("expected ID to be preserved")
	}
	if !got.CreatedAt.Equal(created) {
		t.Error("expected CreatedAt to be preserved")
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("expected UpdatedAt %v, got %v", later, got.UpdatedAt)
	}
	if got.Title != "New" || got.Content != "new body" {
		t.Errorf("unexpected commit result: %+v", got)
	}
	if note.Title != "Old" {
		t.Error("expected original note to be left untouched")
	}
}

func TestNoteCommitBlankTitle(t *testing.T) {
	note := NewNote("Keep", "", time.Now())

	for _, title := range []string{"", "   ", "\t\n"} {
		got := note.Commit(title, "body", time.Now())
		if got.Title != DefaultTitle {
			t.Errorf("title %q: expected %q, got %q", title, DefaultTitle, got.Title)
		}
	}
}

func TestNoteFormattedDate(t *testing.T) {
	note := NewNote("", "", time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC))

	if got := note.FormattedDate(); got != "03/05/24 14:07" {
		t.Errorf("expected %q, got %q", "03/05/24 14:07", got)
	}
}

func TestNoteShortID(t *testing.T) {
	note := NewNote("", "", time.Now())

	if got := note.ShortID(); got != note.ID.String()[:6] {
		t.Errorf("expected %q, got %q", note.ID.String()[:6], got)
	}
}
