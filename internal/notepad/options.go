// ABOUTME: Functional options for constructing a note store.
// ABOUTME: Controls the clock, logger and initial note collection.

package notepad

import (
	"time"

	"github.com/harper/notepad/internal/models"
	"github.com/rs/zerolog"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for creation and modification stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger that records state transitions at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithoutSamples starts the store with an empty collection.
func WithoutSamples() Option {
	return func(s *Store) {
		s.seed = nil
	}
}

// WithNotes replaces the sample notes with the given collection.
func WithNotes(notes ...models.Note) Option {
	return func(s *Store) {
		s.seed = func(time.Time) []models.Note {
			return notes
		}
	}
}
