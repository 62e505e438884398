// ABOUTME: Note model representing a single editable note.
// ABOUTME: Provides constructor, commit helpers and list-row date formatting.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle replaces blank titles when a note is committed.
const DefaultTitle = "New Note"

// DateLayout is the list-row timestamp format (MM/dd/yy HH:mm).
const DateLayout = "01/02/06 15:04"

type Note struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated"`
}

func NewNote(title, content string, now time.Time) Note {
	return Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Commit returns a copy of n carrying the new title and content, stamped at
// now. Blank titles become DefaultTitle; CreatedAt and ID are preserved.
func (n Note) Commit(title, content string, now time.Time) Note {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = now
	return n
}

func (n Note) FormattedDate() string {
	return n.UpdatedAt.Format(DateLayout)
}

// ShortID is the six-character prefix used in listings and lookups.
func (n Note) ShortID() string {
	return n.ID.String()[:6]
}
