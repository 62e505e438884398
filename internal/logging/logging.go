// ABOUTME: Structured logger construction on top of zerolog.
// ABOUTME: Builds console or JSON loggers writing to a stream or log file.

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const permission = 0o644

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var ErrUnknownFormat = errors.New("unknown log format")

// Builder collects logger settings; Make opens any file and returns the
// logger.
type Builder struct {
	writer io.Writer
	path   string
	level  string
	format string
}

// Logger is a zerolog logger that may own a log file.
type Logger struct {
	zerolog.Logger
	file *os.File
}

func New() *Builder {
	return &Builder{
		writer: os.Stderr,
		level:  zerolog.InfoLevel.String(),
		format: FormatConsole,
	}
}

// FromPath appends to the file at path instead of writing to a stream.
func (b *Builder) FromPath(path string) *Builder {
	b.path = path
	return b
}

func (b *Builder) FromWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

func (b *Builder) WithLevel(level string) *Builder {
	b.level = level
	return b
}

func (b *Builder) WithFormat(format string) *Builder {
	b.format = format
	return b
}

func (b *Builder) Make() (*Logger, error) {
	level, err := zerolog.ParseLevel(b.level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	l := &Logger{}
	w := b.writer
	if b.path != "" {
		if err := os.MkdirAll(filepath.Dir(b.path), 0o750); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		l.file, err = os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = zerolog.SyncWriter(l.file)
	}
	if w == nil {
		w = io.Discard
	}

	switch b.format {
	case FormatJSON:
	case FormatConsole:
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    l.file != nil,
			TimeFormat: time.TimeOnly,
		}
	default:
		_ = l.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, b.format)
	}

	l.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
