// ABOUTME: Sample notes shown when a store starts up.
// ABOUTME: Demonstration data only; nothing here is persisted.

package notepad

import (
	"time"

	"github.com/harper/notepad/internal/models"
)

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

var sampleOffsets = []struct {
	title  string
	offset time.Duration
}{
	{"Note 1", -10 * time.Minute},
	{"Note 2", -30 * time.Minute},
	{"Note 3", -1 * time.Hour},
}

func sampleNotes(now time.Time) []models.Note {
	notes := make([]models.Note, 0, len(sampleOffsets))
	for _, s := range sampleOffsets {
		notes = append(notes, models.NewNote(s.title, loremIpsum, now.Add(s.offset)))
	}
	return notes
}
