// ABOUTME: Sentinel errors for note lookups.
// ABOUTME: Callers match them with errors.Is.

package models

import "errors"

var (
	ErrPrefixTooShort  = errors.New("prefix must be at least 6 characters")
	ErrAmbiguousPrefix = errors.New("prefix matches multiple notes")
	ErrNoteNotFound    = errors.New("note not found")
)
